package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Davetheuj/SCWebService/internal/auth"
	"github.com/Davetheuj/SCWebService/internal/aws/storage"
	"github.com/Davetheuj/SCWebService/internal/domains/dtos"
	"github.com/Davetheuj/SCWebService/internal/domains/entities"
	"github.com/Davetheuj/SCWebService/pkg/utils"
)

// DefaultMinMatchDuration is the shortest elapsed time between a session
// token being issued and its result being accepted. Results arriving sooner
// are treated as fabricated.
const DefaultMinMatchDuration = time.Second

var (
	ErrInvalidToken  = errors.New("invalid match token")
	ErrMatchTooShort = errors.New("match shorter than minimum duration")
	ErrUserNotFound  = errors.New("user not found")
)

// UserStore is the user record collaborator. Lookups for unknown ids must
// report storage.ErrUserNotFound.
type UserStore interface {
	GetUser(ctx context.Context, userId string) (entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) error
}

// Service settles submitted match results: it authenticates the session
// token, applies reward and rating changes and persists the user record.
type Service struct {
	tokens *auth.Issuer
	users  UserStore

	minMatchDuration time.Duration
}

func NewService(tokens *auth.Issuer, users UserStore, cfg Config) *Service {
	minMatchDuration := cfg.MinMatchDuration
	if minMatchDuration <= 0 {
		minMatchDuration = DefaultMinMatchDuration
	}
	return &Service{
		tokens:           tokens,
		users:            users,
		minMatchDuration: minMatchDuration,
	}
}

// SubmitResult applies a match outcome to the submitting user's record and
// returns the gems earned.
//
// Settlement is not idempotent: a token remains redeemable until it
// expires, so resubmitting one applies the reward and rating change again.
func (s *Service) SubmitResult(ctx context.Context, submission dtos.MatchSubmissionRequest, now time.Time) (int, error) {
	claims, err := s.tokens.Validate(submission.Token, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// Evaluated only after the token checks out, before any store access.
	if now.Sub(claims.StartedAt) < s.minMatchDuration {
		return 0, ErrMatchTooShort
	}

	user, err := s.users.GetUser(ctx, claims.UserId)
	if errors.Is(err, storage.ErrUserNotFound) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	gems := utils.CalculateRewards(submission.Victory)
	user.Gems += gems
	if submission.Ranked {
		user.Rating += utils.CalculateRatingChange(
			submission.LocalRating,
			submission.OppositionRating,
			submission.Victory,
		)
	}
	if submission.Victory {
		user.Wins += 1
	} else {
		user.Losses += 1
	}
	user.UpdatedAt = now

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return gems, nil
}
