package dtos

import (
	"time"

	"github.com/Davetheuj/SCWebService/internal/domains/entities"
)

type UserRegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type UserLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserUpdateRequest struct {
	Username     string               `json:"username"`
	Password     string               `json:"password"`
	BoardPresets []BoardPresetRequest `json:"boardPresets"`
}

type BoardPresetRequest struct {
	XVals      []int `json:"xVals"`
	YVals      []int `json:"yVals"`
	PieceTypes []int `json:"pieceTypes"`
}

type UserResponse struct {
	Id           string               `json:"id"`
	Username     string               `json:"username"`
	Email        string               `json:"email,omitempty"`
	Rating       int                  `json:"rating"`
	Wins         int                  `json:"wins"`
	Losses       int                  `json:"losses"`
	Draws        int                  `json:"draws"`
	Gems         int                  `json:"gems"`
	BoardPresets []BoardPresetRequest `json:"boardPresets,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// UserResponseFromEntity maps a stored user onto the wire shape. Credential
// material never leaves the service; the email is included only for the
// owner's own fetches (full).
func UserResponseFromEntity(user entities.User, full bool) UserResponse {
	resp := UserResponse{
		Id:        user.Id,
		Username:  user.Username,
		Rating:    user.Rating,
		Wins:      user.Wins,
		Losses:    user.Losses,
		Draws:     user.Draws,
		Gems:      user.Gems,
		CreatedAt: user.CreatedAt,
	}
	for _, preset := range user.BoardPresets {
		resp.BoardPresets = append(resp.BoardPresets, BoardPresetRequest{
			XVals:      preset.XVals,
			YVals:      preset.YVals,
			PieceTypes: preset.PieceTypes,
		})
	}
	if full {
		resp.Email = user.Email
	}
	return resp
}

func BoardPresetsFromRequests(presets []BoardPresetRequest) []entities.BoardPreset {
	var out []entities.BoardPreset
	for _, preset := range presets {
		out = append(out, entities.BoardPreset{
			XVals:      preset.XVals,
			YVals:      preset.YVals,
			PieceTypes: preset.PieceTypes,
		})
	}
	return out
}
