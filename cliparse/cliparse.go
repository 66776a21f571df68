package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/points-tracker/models"
)

type Config struct {
	Port     int
	MongoURI string

	// Mail transport. Sender/Password empty means alert dispatch degrades
	// to a logged no-op rather than failing startup.
	SMTPSender    string
	SMTPPassword  string
	SMTPHost      string
	SMTPPort      int
	SMTPTLSMode   string
	SMTPForceIPv4 bool

	// Dispatch behavior
	DispatchMode    string
	DispatchWorkers int
	DispatchQueue   int
}

// HasMailCredentials reports whether a sender identity and credential are
// both configured.
func (c Config) HasMailCredentials() bool {
	return c.SMTPSender != "" && c.SMTPPassword != ""
}

// ParseFlags validates flags, falling back to environment variables.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	// Best-effort: a missing .env is not an error
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("points-tracker", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.MongoURI, "m", "", "MongoDB connection string")

	// Transport config (CLI for dev, env for deployment)
	fs.StringVar(&cfg.SMTPHost, "smtp-host", "", "Outbound mail host")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", 0, "Outbound mail port (587 or 465)")
	fs.StringVar(&cfg.DispatchMode, "dispatch-mode", "", "Alert dispatch mode (async or sync)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGO_URI")
	}
	if cfg.MongoURI == "" {
		return Config{}, errors.New("Mongo URI required (use -m or MONGO_URI env)")
	}

	// Credentials - optional, absence degrades dispatch to a no-op
	cfg.SMTPSender = os.Getenv("SMTP_SENDER")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")

	if cfg.SMTPHost == "" {
		cfg.SMTPHost = os.Getenv("SMTP_HOST")
		if cfg.SMTPHost == "" {
			cfg.SMTPHost = "smtp.gmail.com"
		}
	}
	if cfg.SMTPPort == 0 {
		if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid SMTP_PORT env variable")
			}
			cfg.SMTPPort = port
		} else {
			cfg.SMTPPort = 587
		}
	}

	cfg.SMTPTLSMode = os.Getenv("SMTP_TLS")
	if cfg.SMTPTLSMode == "" {
		cfg.SMTPTLSMode = models.TLSModeSTARTTLS
	}
	if cfg.SMTPTLSMode != models.TLSModeSTARTTLS && cfg.SMTPTLSMode != models.TLSModeImplicit {
		return Config{}, errors.New("SMTP_TLS must be 'starttls' or 'implicit'")
	}

	if os.Getenv("SMTP_FORCE_IPV4") != "" {
		force, err := strconv.ParseBool(os.Getenv("SMTP_FORCE_IPV4"))
		if err != nil {
			return Config{}, errors.New("invalid SMTP_FORCE_IPV4 env variable")
		}
		cfg.SMTPForceIPv4 = force
	}

	if cfg.DispatchMode == "" {
		cfg.DispatchMode = os.Getenv("DISPATCH_MODE")
		if cfg.DispatchMode == "" {
			cfg.DispatchMode = models.DispatchAsync
		}
	}
	if cfg.DispatchMode != models.DispatchAsync && cfg.DispatchMode != models.DispatchSync {
		return Config{}, errors.New("dispatch mode must be 'async' or 'sync'")
	}

	cfg.DispatchWorkers = 2
	if workersStr := os.Getenv("DISPATCH_WORKERS"); workersStr != "" {
		workers, err := strconv.Atoi(workersStr)
		if err != nil || workers < 1 {
			return Config{}, errors.New("invalid DISPATCH_WORKERS env variable")
		}
		cfg.DispatchWorkers = workers
	}

	cfg.DispatchQueue = 32
	if queueStr := os.Getenv("DISPATCH_QUEUE"); queueStr != "" {
		queue, err := strconv.Atoi(queueStr)
		if err != nil || queue < 1 {
			return Config{}, errors.New("invalid DISPATCH_QUEUE env variable")
		}
		cfg.DispatchQueue = queue
	}

	return cfg, nil
}
