package services

import (
	"context"
	"errors"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/google/uuid"
)

// ErrAccountNameRequired is returned when an account is created without a name.
var ErrAccountNameRequired = errors.New("account name is required")

// AccountWriter defines write operations for transporter accounts.
type AccountWriter interface {
	Save(ctx context.Context, name, phone string) (uuid.UUID, error)
}

// AccountLister defines listing operations for transporter accounts.
type AccountLister interface {
	List(ctx context.Context) ([]models.Account, error)
}

// AccountService manages the transporter registry.
type AccountService struct {
	writer AccountWriter
	getter AccountGetter
	lister AccountLister
}

// NewAccountService creates a new AccountService.
func NewAccountService(writer AccountWriter, getter AccountGetter, lister AccountLister) *AccountService {
	return &AccountService{
		writer: writer,
		getter: getter,
		lister: lister,
	}
}

// Create registers a new transporter account.
func (s *AccountService) Create(ctx context.Context, name, phone string) (*models.Account, error) {
	if name == "" {
		return nil, ErrAccountNameRequired
	}

	id, err := s.writer.Save(ctx, name, phone)
	if err != nil {
		logger.Log.Errorw("failed to save account", "name", name, "error", err)
		return nil, err
	}

	return s.getter.GetByID(ctx, id)
}

// List returns all transporter accounts.
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.lister.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list accounts", "error", err)
		return nil, err
	}
	return accounts, nil
}
