package services

import (
	"context"
	"time"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
	"github.com/imadityagolu/mct-5-amazone/repository"
)

// ProfileService manages the free-form per-user profile document.
type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the stored profile, or an empty one when none exists yet.
func (s *ProfileService) Get(ctx context.Context, userID string) (models.Profile, error) {
	if err := requireUser(userID); err != nil {
		return models.Profile{}, err
	}

	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return models.Profile{}, nil
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// Update merge-writes the provided fields into the remote record, stamping
// the account email and update time, and returns the stored result.
func (s *ProfileService) Update(ctx context.Context, userID, email string, profile models.Profile) (models.Profile, error) {
	if err := requireUser(userID); err != nil {
		return models.Profile{}, err
	}

	profile.Email = email
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Merge(ctx, userID, profile); err != nil {
		return models.Profile{}, err
	}
	return s.repo.Get(ctx, userID)
}
