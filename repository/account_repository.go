package repository

import (
	"github.com/spncrkm/e-commerce-project/models"

	"gorm.io/gorm"
)

// IAccountRepository defines the interface for customer account data
// operations.
type IAccountRepository interface {
	FindByID(id int) (*models.CustomerAccount, error)
	Create(account *models.CustomerAccount) error
	Update(account *models.CustomerAccount) error
	Delete(id int) (int64, error)
}

// AccountRepository implements IAccountRepository for GORM.
type AccountRepository struct {
	DB *gorm.DB
}

// NewAccountRepository creates a new AccountRepository instance.
func NewAccountRepository(db *gorm.DB) IAccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) FindByID(id int) (*models.CustomerAccount, error) {
	var account models.CustomerAccount
	err := r.DB.First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create inserts the account row. A duplicate username trips the unique index
// and the database error is returned as-is.
func (r *AccountRepository) Create(account *models.CustomerAccount) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(account).Error
	})
}

func (r *AccountRepository) Update(account *models.CustomerAccount) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(account).Error
	})
}

func (r *AccountRepository) Delete(id int) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.CustomerAccount{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
