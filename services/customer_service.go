package services

import (
	"errors"
	"fmt"

	"github.com/spncrkm/e-commerce-project/models"
	"github.com/spncrkm/e-commerce-project/repository"
	"github.com/spncrkm/e-commerce-project/schemas"

	"gorm.io/gorm"
)

// ICustomerService defines the interface for customer business logic.
type ICustomerService interface {
	ListCustomers() ([]schemas.CustomerResponse, error)
	CreateCustomer(payload *schemas.CustomerPayload) (schemas.ValidationErrors, error)
	UpdateCustomer(id int, payload *schemas.CustomerPayload) (schemas.ValidationErrors, error)
	DeleteCustomer(id int) error
}

// CustomerService implements ICustomerService.
type CustomerService struct {
	customerRepo repository.ICustomerRepository
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(repo repository.ICustomerRepository) ICustomerService {
	return &CustomerService{customerRepo: repo}
}

func (s *CustomerService) ListCustomers() ([]schemas.CustomerResponse, error) {
	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return schemas.NewCustomerListResponse(customers), nil
}

func (s *CustomerService) CreateCustomer(payload *schemas.CustomerPayload) (schemas.ValidationErrors, error) {
	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	customer := &models.Customer{}
	payload.Apply(customer)
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	return nil, nil
}

// UpdateCustomer looks the row up first so a missing id reports not-found
// before any validation runs.
func (s *CustomerService) UpdateCustomer(id int, payload *schemas.CustomerPayload) (schemas.ValidationErrors, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer %d: %w", id, err)
	}

	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	payload.Apply(customer)
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	return nil, nil
}

func (s *CustomerService) DeleteCustomer(id int) error {
	affected, err := s.customerRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
