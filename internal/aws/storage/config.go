package storage

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/viper"
)

type Config struct {
	UsersTableName                  *string
	UsernameIndexName               *string
	MatchmakingHostsTableName       *string
	RankedMatchmakingHostsTableName *string
}

func NewConfig() Config {
	viper.AutomaticEnv()
	viper.SetDefault("USERS_TABLE_NAME", "Users")
	viper.SetDefault("USERNAME_INDEX_NAME", "UsernameIndex")
	viper.SetDefault("MATCHMAKING_HOSTS_TABLE_NAME", "MatchmakingHosts")
	viper.SetDefault("RANKED_MATCHMAKING_HOSTS_TABLE_NAME", "RankedMatchmakingHosts")

	return Config{
		UsersTableName:                  aws.String(viper.GetString("USERS_TABLE_NAME")),
		UsernameIndexName:               aws.String(viper.GetString("USERNAME_INDEX_NAME")),
		MatchmakingHostsTableName:       aws.String(viper.GetString("MATCHMAKING_HOSTS_TABLE_NAME")),
		RankedMatchmakingHostsTableName: aws.String(viper.GetString("RANKED_MATCHMAKING_HOSTS_TABLE_NAME")),
	}
}
