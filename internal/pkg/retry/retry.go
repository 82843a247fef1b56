package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig is used only for process bootstrap (database connectivity).
// The interview core performs no automatic retries: failed generation or
// transcription calls are surfaced to the caller for a manual retry.
type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"5"`
	Delay    time.Duration `env:"DELAY" envDefault:"500ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"5s"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
	}
}
