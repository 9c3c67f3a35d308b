package controllers_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/spncrkm/e-commerce-project/schemas"
)

// MockCustomerService is a mock implementation of services.ICustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers() ([]schemas.CustomerResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CustomerResponse), args.Error(1)
}

func (m *MockCustomerService) CreateCustomer(payload *schemas.CustomerPayload) (schemas.ValidationErrors, error) {
	args := m.Called(payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(id int, payload *schemas.CustomerPayload) (schemas.ValidationErrors, error) {
	args := m.Called(id, payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductService is a mock implementation of services.IProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts() ([]schemas.ProductResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.ProductResponse), args.Error(1)
}

func (m *MockProductService) SearchProductsByName(name string) ([]schemas.ProductResponse, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.ProductResponse), args.Error(1)
}

func (m *MockProductService) CreateProduct(payload *schemas.ProductPayload) (schemas.ValidationErrors, error) {
	args := m.Called(payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockProductService) UpdateProduct(id int, payload *schemas.ProductPayload) (schemas.ValidationErrors, error) {
	args := m.Called(id, payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockProductService) DeleteProduct(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOrderService is a mock implementation of services.IOrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListOrders() ([]schemas.OrderResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.OrderResponse), args.Error(1)
}

func (m *MockOrderService) CreateOrder(payload *schemas.OrderPayload) (schemas.ValidationErrors, error) {
	args := m.Called(payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(id int, payload *schemas.OrderPayload) (schemas.ValidationErrors, error) {
	args := m.Called(id, payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderService) AttachProduct(orderID int, payload *schemas.OrderProductPayload) (schemas.ValidationErrors, error) {
	args := m.Called(orderID, payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockOrderService) DetachProduct(orderID, productID int) error {
	args := m.Called(orderID, productID)
	return args.Error(0)
}

// MockAccountService is a mock implementation of services.IAccountService.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(id int) (*schemas.AccountResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.AccountResponse), args.Error(1)
}

func (m *MockAccountService) CreateAccount(payload *schemas.AccountPayload) (schemas.ValidationErrors, error) {
	args := m.Called(payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(id int, payload *schemas.AccountPayload) (schemas.ValidationErrors, error) {
	args := m.Called(id, payload)
	return verrsOf(args.Get(0)), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func verrsOf(v any) schemas.ValidationErrors {
	if v == nil {
		return nil
	}
	return v.(schemas.ValidationErrors)
}

func marshalBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewReader(b)
}
