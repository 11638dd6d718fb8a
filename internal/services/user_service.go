package services

import (
	"context"
	"errors"
	"fmt"

	"commerce-core/internal/domain"
	"commerce-core/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if existing, err := s.repo.FindByUsername(user.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username %s taken", ErrUserExists, user.Username)
	}
	if existing, err := s.repo.FindByEmail(user.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email %s taken", ErrUserExists, user.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login verifies credentials and hands back the user plus an opaque session
// token.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	return user, uuid.NewString(), nil
}

// ValidateUser is the existence check the order and payment services consume.
func (s *UserService) ValidateUser(ctx context.Context, id uint64) (bool, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
