package dtos

type MatchTokenResponse struct {
	Token string `json:"token"`
}

// MatchSubmissionRequest reports the outcome of a finished match. The token
// is the session token handed out when the match started; the local and
// opposition ratings echo what the client saw at match time and only feed
// the rating change when Ranked is set.
type MatchSubmissionRequest struct {
	Token            string `json:"token"`
	Victory          bool   `json:"victory"`
	Ranked           bool   `json:"ranked"`
	LocalRating      int    `json:"localRating"`
	OppositionRating int    `json:"oppositionRating"`
}

type MatchRewardResponse struct {
	Gems int `json:"gems"`
}
