package dtos

import (
	"time"

	"github.com/Davetheuj/SCWebService/internal/domains/entities"
)

type MatchmakingHostRequest struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	JoinCode string `json:"joinCode"`
}

type FindMatchRequest struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
}

type RemoveFromQueueRequest struct {
	Username string `json:"username"`
}

type MatchmakingHostResponse struct {
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	JoinCode  string    `json:"joinCode"`
	CreatedAt time.Time `json:"createdAt"`
}

// JoinCodeResponse is the plain-queue find response: the lobby join code
// alone, without revealing the host record.
type JoinCodeResponse struct {
	JoinCode string `json:"joinCode"`
}

func MatchmakingHostResponseFromEntity(host entities.MatchmakingHost) MatchmakingHostResponse {
	return MatchmakingHostResponse{
		Username:  host.Username,
		Rating:    host.Rating,
		JoinCode:  host.JoinCode,
		CreatedAt: host.CreatedAt,
	}
}
