package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spncrkm/e-commerce-project/models"
	"github.com/spncrkm/e-commerce-project/repository"
	"github.com/spncrkm/e-commerce-project/schemas"

	"gorm.io/gorm"
)

// IOrderService defines the interface for order business logic.
type IOrderService interface {
	ListOrders() ([]schemas.OrderResponse, error)
	CreateOrder(payload *schemas.OrderPayload) (schemas.ValidationErrors, error)
	UpdateOrder(id int, payload *schemas.OrderPayload) (schemas.ValidationErrors, error)
	DeleteOrder(id int) error
	AttachProduct(orderID int, payload *schemas.OrderProductPayload) (schemas.ValidationErrors, error)
	DetachProduct(orderID, productID int) error
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo    repository.IOrderRepository
	kafkaService IKafkaService
	kafkaTopic   string
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(repo repository.IOrderRepository, kafkaSvc IKafkaService, topic string) IOrderService {
	return &OrderService{
		orderRepo:    repo,
		kafkaService: kafkaSvc,
		kafkaTopic:   topic,
	}
}

// ListOrders shapes every order together with its product ids from the
// Order_Product join table.
func (s *OrderService) ListOrders() ([]schemas.OrderResponse, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	links, err := s.orderRepo.ListAssociations()
	if err != nil {
		return nil, fmt.Errorf("failed to list order products: %w", err)
	}

	productsByOrder := make(map[int][]int, len(orders))
	for _, link := range links {
		productsByOrder[link.OrderID] = append(productsByOrder[link.OrderID], link.ProductID)
	}

	out := make([]schemas.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, schemas.NewOrderResponse(&orders[i], productsByOrder[orders[i].OrderID]))
	}
	return out, nil
}

// CreateOrder persists the order from date and customer_id only. The payload's
// product_id list is not written to the join table; products are attached
// through AttachProduct. The customer_id reference is left for the database
// foreign key to check.
func (s *OrderService) CreateOrder(payload *schemas.OrderPayload) (schemas.ValidationErrors, error) {
	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	order := &models.Order{Date: payload.Time()}
	if payload.CustomerID != nil {
		order.CustomerID = *payload.CustomerID
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishOrderCreated(order)
	return nil, nil
}

// publishOrderCreated notifies downstream consumers. The order is already
// committed, so a broker failure is logged and swallowed.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	event, err := newEvent(EventOrderCreated, OrderCreatedPayload{
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		Date:       order.Date.Format(schemas.DateLayout),
	})
	if err != nil {
		log.Printf("Failed to build %s event for order %d: %v", EventOrderCreated, order.OrderID, err)
		return
	}
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event for order %d: %v", EventOrderCreated, order.OrderID, err)
		return
	}
	if err := s.kafkaService.PushMessage(s.kafkaTopic, message); err != nil {
		log.Printf("Failed to push %s event for order %d: %v", EventOrderCreated, order.OrderID, err)
	}
}

func (s *OrderService) UpdateOrder(id int, payload *schemas.OrderPayload) (schemas.ValidationErrors, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}

	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	payload.Apply(order)
	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", id, err)
	}
	return nil, nil
}

func (s *OrderService) DeleteOrder(id int) error {
	affected, err := s.orderRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachProduct records an Order_Product row after checking both sides exist.
func (s *OrderService) AttachProduct(orderID int, payload *schemas.OrderProductPayload) (schemas.ValidationErrors, error) {
	if verrs := payload.Validate(); verrs != nil {
		return verrs, nil
	}

	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	if _, err := s.orderRepo.FindProductByID(*payload.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", *payload.ProductID, err)
	}

	link := &models.OrderProduct{OrderID: orderID, ProductID: *payload.ProductID}
	if err := s.orderRepo.AttachProduct(link); err != nil {
		return nil, fmt.Errorf("failed to attach product %d to order %d: %w", *payload.ProductID, orderID, err)
	}
	return nil, nil
}

func (s *OrderService) DetachProduct(orderID, productID int) error {
	affected, err := s.orderRepo.DetachProduct(orderID, productID)
	if err != nil {
		return fmt.Errorf("failed to detach product %d from order %d: %w", productID, orderID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
