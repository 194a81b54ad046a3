package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
	"github.com/imadityagolu/mct-5-amazone/repository"
	"github.com/imadityagolu/mct-5-amazone/utils"
)

// AuthService handles account registration and credential login.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account with a bcrypt-hashed password. A taken email
// fails DUPLICATE.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.CodeInternal, err, "hashing password")
	}

	user, err := s.users.Create(ctx, models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// Login checks credentials and issues a signed session token. Unknown email
// and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "", models.User{}, apperr.New(apperr.CodeNotAuthenticated, "invalid email or password")
		}
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.User{}, apperr.New(apperr.CodeNotAuthenticated, "invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return "", models.User{}, apperr.Wrap(apperr.CodeInternal, err, "signing session token")
	}

	user.Password = ""
	return token, user, nil
}
