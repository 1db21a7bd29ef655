package options

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/openearth/catalyst/internal/catalystd/globalapi"
)

// GlobalAPIOptions configures the outbound CityCatalyst Global API client.
type GlobalAPIOptions struct {
	// BaseURL is the Global API host. The GLOBALAPI_BASE_URL environment
	// variable overrides the built-in default; the flag overrides both.
	BaseURL string `json:"base-url" mapstructure:"base-url"`

	// Timeout bounds every outbound request.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

func NewGlobalAPIOptions() *GlobalAPIOptions {
	baseURL := globalapi.DefaultBaseURL
	if env := os.Getenv("GLOBALAPI_BASE_URL"); env != "" {
		baseURL = env
	}
	return &GlobalAPIOptions{
		BaseURL: baseURL,
		Timeout: globalapi.DefaultTimeout,
	}
}

func (o *GlobalAPIOptions) Validate() []error {
	var errs []error
	u, err := url.Parse(o.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid api base URL %q", o.BaseURL))
	}
	if o.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api timeout must be positive, got %s", o.Timeout))
	}
	return errs
}

func (o *GlobalAPIOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BaseURL, "api.base-url", o.BaseURL, "CityCatalyst Global API base URL.")
	fs.DurationVar(&o.Timeout, "api.timeout", o.Timeout, "Timeout for outbound Global API requests.")
}
