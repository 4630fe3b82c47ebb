package auth

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Secret   string
	Validity time.Duration
	Leeway   time.Duration
}

// NewConfig reads the token settings from the environment. The secret has
// no default on purpose: an unset JWT_SECRET_KEY must fail issuer
// construction rather than fall back to something guessable.
func NewConfig() Config {
	viper.AutomaticEnv()
	viper.SetDefault("MATCH_TOKEN_VALIDITY", DefaultValidity.String())
	viper.SetDefault("MATCH_TOKEN_LEEWAY", DefaultLeeway.String())

	return Config{
		Secret:   viper.GetString("JWT_SECRET_KEY"),
		Validity: viper.GetDuration("MATCH_TOKEN_VALIDITY"),
		Leeway:   viper.GetDuration("MATCH_TOKEN_LEEWAY"),
	}
}
