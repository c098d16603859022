package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Auth registers users and issues tokens for them.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService creates an Auth service.
func NewAuthService(ur i.UserRepo, t i.Tokenizer, logger i.Logger) (*Auth, error) {
	if logger == nil {
		return nil, ErrMissingLogger
	}
	return &Auth{
		userRepo:  ur,
		tokenizer: t,
		logger:    logger,
	}, nil
}

// Register creates a new user.
func (a *Auth) Register(username, password string) error {
	if _, err := a.userRepo.ByUsername(username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		a.logger.Error(fmt.Sprintf("looking up username %s: %s", username, err))
		return err
	}

	user, err := domain.NewUser(domain.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	if err := a.userRepo.Save(user); err != nil {
		if errors.Is(err, domain.ErrUsernameConflict) {
			return ErrUsernameTaken
		}
		a.logger.Error(fmt.Sprintf("saving user %s: %s", username, err))
		return err
	}

	a.logger.Info(fmt.Sprintf("registered user %s", user.ID))
	return nil
}

// SignIn verifies the credentials and returns the user with a signed token.
func (a *Auth) SignIn(username, password string) (*domain.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		a.logger.Error(fmt.Sprintf("signing token for %s: %s", user.ID, err))
		return nil, "", err
	}

	return user, token, nil
}
