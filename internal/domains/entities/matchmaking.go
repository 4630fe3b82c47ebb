package entities

import (
	"time"
)

// MatchmakingHost is a player waiting in a matchmaking queue for an
// opponent to join their lobby.
type MatchmakingHost struct {
	Username  string    `dynamodbav:"Username"`
	Rating    int       `dynamodbav:"Rating"`
	JoinCode  string    `dynamodbav:"JoinCode"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
}
