package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
)

type mockProfileRepo struct {
	profiles map[string]models.Profile
	calls    int
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: map[string]models.Profile{}}
}

func (m *mockProfileRepo) Get(_ context.Context, userID string) (models.Profile, error) {
	m.calls++
	profile, ok := m.profiles[userID]
	if !ok {
		return models.Profile{}, apperr.New(apperr.CodeNotFound, "profile not found")
	}
	return profile, nil
}

func (m *mockProfileRepo) Merge(_ context.Context, userID string, profile models.Profile) error {
	m.calls++
	current := m.profiles[userID]
	if profile.Name != "" {
		current.Name = profile.Name
	}
	if profile.Bio != "" {
		current.Bio = profile.Bio
	}
	if profile.Gender != "" {
		current.Gender = profile.Gender
	}
	if profile.Address != "" {
		current.Address = profile.Address
	}
	if profile.City != "" {
		current.City = profile.City
	}
	if profile.State != "" {
		current.State = profile.State
	}
	if profile.Phone != "" {
		current.Phone = profile.Phone
	}
	if profile.Email != "" {
		current.Email = profile.Email
	}
	if profile.UpdatedAt != "" {
		current.UpdatedAt = profile.UpdatedAt
	}
	m.profiles[userID] = current
	return nil
}

func TestProfileGetMissingReturnsEmpty(t *testing.T) {
	svc := NewProfileService(newMockProfileRepo())

	profile, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{}, profile)
}

func TestProfileUpdateMergesFields(t *testing.T) {
	repo := newMockProfileRepo()
	repo.profiles["u1"] = models.Profile{Name: "Aditya", City: "Patna"}
	svc := NewProfileService(repo)

	updated, err := svc.Update(context.Background(), "u1", "aditya@example.com", models.Profile{Bio: "hello"})
	require.NoError(t, err)

	// Provided fields land, untouched fields survive, email and timestamp
	// are stamped.
	assert.Equal(t, "Aditya", updated.Name)
	assert.Equal(t, "Patna", updated.City)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "aditya@example.com", updated.Email)
	assert.NotEmpty(t, updated.UpdatedAt)
}

func TestProfileOperationsRequireAuthentication(t *testing.T) {
	repo := newMockProfileRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, "")
	assert.Equal(t, apperr.CodeNotAuthenticated, apperr.CodeOf(err))

	_, err = svc.Update(ctx, "", "a@example.com", models.Profile{})
	assert.Equal(t, apperr.CodeNotAuthenticated, apperr.CodeOf(err))

	assert.Zero(t, repo.calls)
}
