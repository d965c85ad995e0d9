package planapi

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// Client talks to the upstream resource-planning API. Every list endpoint
// is paginated with an opaque cursor; every request carries the bearer
// credential. The client is read-only.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
	log      *logrus.Entry
	maxPages int
	onPage   func(path string, page, items int)
}

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// MaxPages caps how many pages one logical fetch follows. Results
	// beyond the cap are truncated and flagged. Defaults to 10.
	MaxPages int

	Logger *logrus.Logger

	// OnPage is called after each fetched page, for progress reporting.
	OnPage func(path string, page, items int)
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "planapi",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 10
		},
	})

	return &Client{
		baseURL:  opts.BaseURL,
		apiKey:   opts.APIKey,
		http:     &http.Client{Timeout: opts.Timeout},
		breaker:  breaker,
		log:      opts.Logger.WithField("component", "planapi"),
		maxPages: opts.MaxPages,
		onPage:   opts.OnPage,
	}
}
