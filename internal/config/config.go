package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address         string        `env:"RUN_ADDRESS"      envDefault:"localhost:8080"`
	LogLvl          string        `env:"LOG_LVL"          envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"console"`
	StartingBalance int64         `env:"STARTING_BALANCE" envDefault:"75000"`
	ProcessingDelay time.Duration `env:"PROCESSING_DELAY" envDefault:"2s"`
	CheckoutURL     string        `env:"CHECKOUT_URL"     envDefault:"https://buy.stripe.com/test_eVqfZa94vatael2asTfUQ00"`
	MinTopUp        int64         `env:"MIN_TOP_UP"       envDefault:"1000"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"        envDefault:"24h"`
	TokenSecret     string        `env:"TOKEN_SECRET"     envDefault:"bicpop-dev-secret"`
	SettleWorkers   int           `env:"SETTLE_WORKERS"   envDefault:"4"`
}

func New() *Config {
	cfg := &Config{}

	// .env is optional; real environment wins over it.
	_ = godotenv.Load()
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: console or json")
	flag.Int64Var(&cfg.StartingBalance, "b", cfg.StartingBalance, "starting wallet balance for new sessions")
	flag.DurationVar(&cfg.ProcessingDelay, "p", cfg.ProcessingDelay, "simulated payment processing delay")
	flag.StringVar(&cfg.CheckoutURL, "c", cfg.CheckoutURL, "external checkout link")
	flag.Parse()

	if !strings.HasPrefix(cfg.CheckoutURL, "http://") && !strings.HasPrefix(cfg.CheckoutURL, "https://") {
		cfg.CheckoutURL = "https://" + cfg.CheckoutURL
	}
	if cfg.SettleWorkers < 1 {
		cfg.SettleWorkers = 1
	}

	return cfg
}
