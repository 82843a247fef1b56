package interview

import (
	"fmt"
	"sort"
	"strings"
)

// Prompt builders for each stage persona. The Coverage= and Lan=/Sub=/Beh=/
// Sum= answer formats requested here must stay in sync with extract.go.

func welcomePrompt(company, candidate, role string) string {
	return fmt.Sprintf(
		"You are an interviewer at %s. Greet the candidate %s who is applying for the %s position. "+
			"Welcome them warmly, introduce the company and the role in one or two sentences, and ask them to introduce themselves.",
		company, candidate, role)
}

func introductionPrompt(candidateText string) string {
	return fmt.Sprintf(
		"The candidate introduced themselves as follows:\n%s\n"+
			"Acknowledge the introduction briefly and positively as an interviewer would.",
		candidateText)
}

func startPrompt(candidateText string) string {
	return fmt.Sprintf(
		"The candidate replied:\n%s\n"+
			"Tell them the technical part of the interview is about to begin, in one short sentence.",
		candidateText)
}

func comparePrompt(question, expected, answer string) string {
	var b strings.Builder
	b.WriteString("Compare the candidate's answer with the expected answer.\n")
	b.WriteString("Question: " + question + "\n")
	b.WriteString("Expected answer: " + expected + "\n")
	b.WriteString("Candidate's answer: " + answer + "\n")
	b.WriteString("Give short, encouraging feedback on the answer. ")
	b.WriteString("End your reply with the exact marker Coverage=<n> where <n> is an integer 0-100 ")
	b.WriteString("estimating how completely the answer covered the expected one.")
	return b.String()
}

func followupPrompt(question string) string {
	return fmt.Sprintf(
		"The candidate struggled with this question: %s\n"+
			"Ask one strictly easier follow-up question on the same concept. "+
			"Keep it purely conceptual and never ask for code samples.",
		question)
}

func closingPrompt(candidate string) string {
	return fmt.Sprintf(
		"The interview with %s is over. Thank them for their time and tell them the results will be shared soon, in one or two sentences.",
		candidate)
}

func summaryPrompt(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Below is the full transcript of an automated job interview.\n\n")
	for _, k := range keys {
		b.WriteString(k + ": " + entries[k] + "\n")
	}
	b.WriteString("\nRate the candidate's language fluency, subject knowledge and behavior, each 0-10, ")
	b.WriteString("and write one sentence of overall feedback. ")
	b.WriteString("Reply in exactly this format: Lan=<n> Sub=<n> Beh=<n> Sum=<text>")
	return b.String()
}
