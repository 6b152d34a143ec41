package configs

import "time"

// Sheets configures the spreadsheet-backed data API. When BaseURL is empty
// the service runs against the built-in demo dataset.
type Sheets struct {
	BaseURL string `env:"BASE_URL"`
	// Token, when set, is sent as a bearer token.
	Token string `env:"TOKEN"`
	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
	// Retries is the number of attempts per dataset, including the first.
	Retries int `env:"RETRIES" envDefault:"3"`
	// Backoff is the base delay between attempts; it doubles every retry.
	Backoff time.Duration `env:"BACKOFF" envDefault:"100ms"`
	// DemoSeed seeds the generated dataset used without BaseURL.
	DemoSeed int64 `env:"DEMO_SEED" envDefault:"42"`
}
