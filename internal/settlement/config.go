package settlement

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	MinMatchDuration time.Duration
}

func NewConfig() Config {
	viper.AutomaticEnv()
	viper.SetDefault("MIN_MATCH_DURATION", DefaultMinMatchDuration.String())

	return Config{
		MinMatchDuration: viper.GetDuration("MIN_MATCH_DURATION"),
	}
}
