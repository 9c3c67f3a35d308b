package services

import (
	"errors"
	"fmt"

	"github.com/spncrkm/e-commerce-project/models"
	"github.com/spncrkm/e-commerce-project/repository"
	"github.com/spncrkm/e-commerce-project/schemas"

	"gorm.io/gorm"
)

// IAccountService defines the interface for customer account business logic.
type IAccountService interface {
	GetAccount(id int) (*schemas.AccountResponse, error)
	CreateAccount(payload *schemas.AccountPayload) (schemas.ValidationErrors, error)
	UpdateAccount(id int, payload *schemas.AccountPayload) (schemas.ValidationErrors, error)
	DeleteAccount(id int) error
}

// AccountService implements IAccountService.
type AccountService struct {
	accountRepo repository.IAccountRepository
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(repo repository.IAccountRepository) IAccountService {
	return &AccountService{accountRepo: repo}
}

func (s *AccountService) GetAccount(id int) (*schemas.AccountResponse, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load account %d: %w", id, err)
	}
	resp := schemas.NewAccountResponse(account)
	return &resp, nil
}

// CreateAccount does not pre-check username uniqueness or the customer_id
// reference; both are enforced by the database and surface as a plain error.
func (s *AccountService) CreateAccount(payload *schemas.AccountPayload) (schemas.ValidationErrors, error) {
	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	account := &models.CustomerAccount{}
	payload.Apply(account)
	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return nil, nil
}

func (s *AccountService) UpdateAccount(id int, payload *schemas.AccountPayload) (schemas.ValidationErrors, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load account %d: %w", id, err)
	}

	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	payload.Apply(account)
	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account %d: %w", id, err)
	}
	return nil, nil
}

func (s *AccountService) DeleteAccount(id int) error {
	affected, err := s.accountRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
