package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"compatron/internal/models"
)

const minPasswordLength = 6

type UserService struct {
	UserRepo UserStore
	Tokens   TokenIssuer
	TokenTTL time.Duration
}

func (s *UserService) SignUp(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return models.AuthResponse{}, models.Invalid("Username and password are required")
	}
	if len(req.Password) < minPasswordLength {
		return models.AuthResponse{}, models.Invalid("Password must be at least 6 characters")
	}

	_, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return models.AuthResponse{}, models.ErrDuplicateUsername
	}
	if !errors.Is(err, models.ErrNoRecord) {
		return models.AuthResponse{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResponse{}, err
	}
	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Username:  username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return models.AuthResponse{}, err
	}
	return s.issue(user)
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return models.AuthResponse{}, models.Invalid("Username and password are required")
	}

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrNoRecord) {
		return models.AuthResponse{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.AuthResponse{}, models.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *UserService) issue(user models.User) (models.AuthResponse, error) {
	session := models.SessionUser{ID: user.ID, Username: user.Username}
	token, err := s.Tokens.NewJWT(session, s.TokenTTL)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{Token: token, User: session}, nil
}
