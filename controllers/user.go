package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
)

// AuthAPI is what the controller needs from the auth service.
type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (string, models.User, error)
}

// ProfileAPI is what the controller needs from the profile service.
type ProfileAPI interface {
	Get(ctx context.Context, userID string) (models.Profile, error)
	Update(ctx context.Context, userID, email string, profile models.Profile) (models.Profile, error)
}

// UserController handles accounts and the profile page.
type UserController struct {
	Auth     AuthAPI
	Profiles ProfileAPI
	Log      zerolog.Logger
}

func NewUserController(auth AuthAPI, profiles ProfileAPI, log zerolog.Logger) *UserController {
	return &UserController{Auth: auth, Profiles: profiles, Log: log}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register handles user registration.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, uc.Log, apperr.New(apperr.CodeValidation, "invalid input"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, uc.Log, apperr.Wrap(apperr.CodeValidation, err, "invalid input"))
		return
	}

	user, err := uc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, uc.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles user authentication and returns a session token.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, uc.Log, apperr.New(apperr.CodeValidation, "invalid input"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, uc.Log, apperr.Wrap(apperr.CodeValidation, err, "invalid input"))
		return
	}

	token, user, err := uc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, uc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

// Logout acknowledges sign-out. Sessions are stateless JWTs; the client
// discards the token.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// GetProfile retrieves the authenticated user's profile, empty when none has
// been saved yet.
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionFrom(r)

	profile, err := uc.Profiles.Get(r.Context(), userID)
	if err != nil {
		writeError(w, uc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile merges the submitted fields into the stored profile.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, email := sessionFrom(r)

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, uc.Log, apperr.New(apperr.CodeValidation, "invalid input"))
		return
	}

	updated, err := uc.Profiles.Update(r.Context(), userID, email, profile)
	if err != nil {
		writeError(w, uc.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
