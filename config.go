package messageformat

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the options that can be set through MESSAGEFORMAT_ prefixed environment variables
type Config struct {
	Locales          []string `env:"LOCALES"            envDefault:"en" envSeparator:","`
	FallbackLocale   string   `env:"FALLBACK_LOCALE"`
	BiDiSupport      bool     `env:"BIDI_SUPPORT"`
	StrictNumberSign bool     `env:"STRICT_NUMBER_SIGN"`
	MaxDepth         int      `env:"MAX_DEPTH"          envDefault:"64"`
}

// EnvPrefix is the prefix of all environment variables read by LoadConfig
const EnvPrefix = "MESSAGEFORMAT_"

// LoadConfig reads the configuration from the process environment
func LoadConfig() (Config, error) {
	return loadConfig(nil)
}

// LoadConfigFrom reads the configuration from the given variables instead of the process environment
func LoadConfigFrom(environment map[string]string) (Config, error) {
	if environment == nil {
		environment = map[string]string{}
	}
	return loadConfig(environment)
}

func loadConfig(environment map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
