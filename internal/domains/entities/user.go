package entities

import (
	"time"
)

// DefaultRating is the rating every freshly registered user starts at.
const DefaultRating = 800

type User struct {
	Id           string        `dynamodbav:"Id"`
	Username     string        `dynamodbav:"Username"`
	Password     string        `dynamodbav:"Password"`
	Email        string        `dynamodbav:"Email"`
	Rating       int           `dynamodbav:"Rating"`
	Wins         int           `dynamodbav:"Wins"`
	Losses       int           `dynamodbav:"Losses"`
	Draws        int           `dynamodbav:"Draws"`
	Gems         int           `dynamodbav:"Gems"`
	BoardPresets []BoardPreset `dynamodbav:"BoardPresets"`
	CreatedAt    time.Time     `dynamodbav:"CreatedAt"`
	UpdatedAt    time.Time     `dynamodbav:"UpdatedAt"`
}

type BoardPreset struct {
	XVals      []int `dynamodbav:"XVals"`
	YVals      []int `dynamodbav:"YVals"`
	PieceTypes []int `dynamodbav:"PieceTypes"`
}
