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
	ErrTraderExists   = errors.New("trader already exists")
	ErrTraderNotFound = errors.New("trader not found")
)

// TraderService manages the merchant accounts that own the catalog, alongside
// the product operations the trader service exposes.
type TraderService struct {
	repo   repository.TraderRepository
	logger *zap.Logger
}

func NewTraderService(repo repository.TraderRepository, logger *zap.Logger) *TraderService {
	return &TraderService{repo: repo, logger: logger}
}

func (s *TraderService) Register(ctx context.Context, trader *domain.Trader) (*domain.Trader, error) {
	if existing, err := s.repo.FindByUsername(trader.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username %s taken", ErrTraderExists, trader.Username)
	}
	if existing, err := s.repo.FindByEmail(trader.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email %s taken", ErrTraderExists, trader.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(trader.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	trader.Password = string(hashed)

	if err := s.repo.Save(trader); err != nil {
		return nil, err
	}

	s.logger.Info("trader registered",
		zap.Uint64("trader_id", trader.ID),
		zap.String("username", trader.Username),
		zap.String("company", trader.Company))
	return trader, nil
}

func (s *TraderService) Login(ctx context.Context, username, password string) (*domain.Trader, string, error) {
	trader, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if trader == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(trader.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	return trader, uuid.NewString(), nil
}

// GetTraderByID returns (nil, nil) when the trader does not exist.
func (s *TraderService) GetTraderByID(ctx context.Context, id uint64) (*domain.Trader, error) {
	return s.repo.FindByID(id)
}

func (s *TraderService) DeleteTrader(ctx context.Context, id uint64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: trader %d", ErrTraderNotFound, id)
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("trader deleted", zap.Uint64("trader_id", id))
	return nil
}
