package repository

import (
	"github.com/spncrkm/e-commerce-project/models"

	"gorm.io/gorm"
)

// IProductRepository defines the interface for product data operations.
type IProductRepository interface {
	List() ([]models.Product, error)
	SearchByName(name string) ([]models.Product, error)
	FindByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) (int64, error)
}

// ProductRepository implements IProductRepository for GORM.
type ProductRepository struct {
	DB *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) List() ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Find(&products).Error
	return products, err
}

// SearchByName matches a case-insensitive substring of the product name,
// cheapest first.
func (r *ProductRepository) SearchByName(name string) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("price asc").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id int) (*models.Product, error) {
	var product models.Product
	err := r.DB.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
}

func (r *ProductRepository) Update(product *models.Product) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(product).Error
	})
}

func (r *ProductRepository) Delete(id int) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Product{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
