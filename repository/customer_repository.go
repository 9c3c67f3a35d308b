package repository

import (
	"github.com/spncrkm/e-commerce-project/models"

	"gorm.io/gorm"
)

// ICustomerRepository defines the interface for customer data operations.
type ICustomerRepository interface {
	List() ([]models.Customer, error)
	FindByID(id int) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id int) (int64, error)
}

// CustomerRepository implements ICustomerRepository for GORM.
type CustomerRepository struct {
	DB *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository instance.
func NewCustomerRepository(db *gorm.DB) ICustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.DB.Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) FindByID(id int) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(customer).Error
	})
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(customer).Error
	})
}

// Delete removes the customer row and reports how many rows matched, so the
// caller can distinguish a delete of a missing id.
func (r *CustomerRepository) Delete(id int) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Customer{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
