package repository

import (
	"github.com/spncrkm/e-commerce-project/models"

	"gorm.io/gorm"
)

// IOrderRepository defines the interface for order data operations, including
// the Order_Product join table.
type IOrderRepository interface {
	List() ([]models.Order, error)
	FindByID(id int) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	Delete(id int) (int64, error)

	FindProductByID(id int) (*models.Product, error)
	ListAssociations() ([]models.OrderProduct, error)
	AttachProduct(link *models.OrderProduct) error
	DetachProduct(orderID, productID int) (int64, error)
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id int) (*models.Order, error) {
	var order models.Order
	err := r.DB.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts the order row. The customer_id foreign key is not checked
// here; a dangling reference is rejected by the database constraint.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *OrderRepository) Update(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(order).Error
	})
}

func (r *OrderRepository) Delete(id int) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Order{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

func (r *OrderRepository) FindProductByID(id int) (*models.Product, error) {
	var product models.Product
	err := r.DB.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *OrderRepository) ListAssociations() ([]models.OrderProduct, error) {
	var links []models.OrderProduct
	err := r.DB.Find(&links).Error
	return links, err
}

func (r *OrderRepository) AttachProduct(link *models.OrderProduct) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(link).Error
	})
}

func (r *OrderRepository) DetachProduct(orderID, productID int) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("order_id = ? AND product_id = ?", orderID, productID).
			Delete(&models.OrderProduct{})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
