package services

import (
	"errors"
	"fmt"

	"github.com/spncrkm/e-commerce-project/models"
	"github.com/spncrkm/e-commerce-project/repository"
	"github.com/spncrkm/e-commerce-project/schemas"

	"gorm.io/gorm"
)

// IProductService defines the interface for product business logic.
type IProductService interface {
	ListProducts() ([]schemas.ProductResponse, error)
	SearchProductsByName(name string) ([]schemas.ProductResponse, error)
	CreateProduct(payload *schemas.ProductPayload) (schemas.ValidationErrors, error)
	UpdateProduct(id int, payload *schemas.ProductPayload) (schemas.ValidationErrors, error)
	DeleteProduct(id int) error
}

// ProductService implements IProductService.
type ProductService struct {
	productRepo repository.IProductRepository
}

// NewProductService creates a new ProductService instance.
func NewProductService(repo repository.IProductRepository) IProductService {
	return &ProductService{productRepo: repo}
}

func (s *ProductService) ListProducts() ([]schemas.ProductResponse, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return schemas.NewProductListResponse(products), nil
}

// SearchProductsByName returns 200-shaped results whether or not anything
// matched; an empty query matches every product.
func (s *ProductService) SearchProductsByName(name string) ([]schemas.ProductResponse, error) {
	products, err := s.productRepo.SearchByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return schemas.NewProductListResponse(products), nil
}

func (s *ProductService) CreateProduct(payload *schemas.ProductPayload) (schemas.ValidationErrors, error) {
	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	product := &models.Product{}
	payload.Apply(product)
	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return nil, nil
}

func (s *ProductService) UpdateProduct(id int, payload *schemas.ProductPayload) (schemas.ValidationErrors, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}

	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	payload.Apply(product)
	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return nil, nil
}

func (s *ProductService) DeleteProduct(id int) error {
	affected, err := s.productRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
