package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = 8088
	DefaultPredictTimeout = 10 * time.Second
	DefaultRateLimit      = 2.0
	DefaultRateBurst      = 5
	DefaultLogLevel       = "info"
	DefaultEnvFile        = ".env"
)

type Config struct {
	Port           int
	PredictURL     string
	PredictTimeout time.Duration
	RateLimit      float64 // submissions per second per client, 0 disables
	RateBurst      int
	LogLevel       string
	TraceStdout    bool
	EnvFile        string
}

// NewFlagSet binds every setting to a flag on a fresh FlagSet.
// Flag defaults are the final defaults; environment variables only apply
// to flags that were not given explicitly (see Finalize).
func NewFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("heartrisk", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", DefaultPort, "Server port (env PORT)")
	fs.StringVar(&cfg.PredictURL, "u", "", "Prediction service URL, e.g. https://host/predict (env PREDICT_URL)")
	fs.DurationVar(&cfg.PredictTimeout, "timeout", DefaultPredictTimeout, "Prediction request timeout (env PREDICT_TIMEOUT)")

	// Abuse protection
	fs.Float64Var(&cfg.RateLimit, "rate", DefaultRateLimit, "Submissions per second per client, 0 disables (env RATE_LIMIT)")
	fs.IntVar(&cfg.RateBurst, "burst", DefaultRateBurst, "Submission burst per client (env RATE_BURST)")

	// Diagnostics
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "debug, info, warn or error (env LOG_LEVEL)")
	fs.BoolVar(&cfg.TraceStdout, "trace", false, "Print trace spans to stdout (env TRACE_STDOUT)")

	fs.StringVar(&cfg.EnvFile, "env-file", DefaultEnvFile, "Environment file to load (env ENV_FILE)")

	return fs
}

// ParseFlags parses args and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := NewFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := Finalize(&cfg, func(name string) bool { return set[name] }); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Finalize loads the env file, falls back to environment variables for
// every flag that changed reports as unset, and validates the result.
func Finalize(cfg *Config, changed func(name string) bool) error {
	if !changed("env-file") {
		if v := os.Getenv("ENV_FILE"); v != "" {
			cfg.EnvFile = v
		}
	}
	if cfg.EnvFile != "" {
		// A missing default .env is fine; a missing file that was asked for is not
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || changed("env-file") {
				return fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
			}
		}
	}

	if !changed("p") {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range", cfg.Port)
	}

	if !changed("u") {
		cfg.PredictURL = os.Getenv("PREDICT_URL")
	}
	if cfg.PredictURL == "" {
		return errors.New("prediction service URL required (use -u or PREDICT_URL env)")
	}
	u, err := url.Parse(cfg.PredictURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid prediction service URL %q", cfg.PredictURL)
	}

	if !changed("timeout") {
		if v := os.Getenv("PREDICT_TIMEOUT"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return errors.New("invalid PREDICT_TIMEOUT env variable")
			}
			cfg.PredictTimeout = d
		}
	}
	if cfg.PredictTimeout <= 0 {
		return errors.New("prediction timeout must be positive")
	}

	if !changed("rate") {
		if v := os.Getenv("RATE_LIMIT"); v != "" {
			r, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = r
		}
	}
	if !changed("burst") {
		if v := os.Getenv("RATE_BURST"); v != "" {
			b, err := strconv.Atoi(v)
			if err != nil {
				return errors.New("invalid RATE_BURST env variable")
			}
			cfg.RateBurst = b
		}
	}
	if cfg.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}
	if cfg.RateLimit > 0 && cfg.RateBurst < 1 {
		return errors.New("rate burst must be at least 1")
	}

	if !changed("log-level") {
		if v := os.Getenv("LOG_LEVEL"); v != "" {
			cfg.LogLevel = v
		}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	if !changed("trace") {
		if v := os.Getenv("TRACE_STDOUT"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.New("invalid TRACE_STDOUT env variable")
			}
			cfg.TraceStdout = b
		}
	}

	return nil
}
