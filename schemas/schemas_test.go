package schemas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spncrkm/e-commerce-project/models"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestCustomerPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload CustomerPayload
		fields  []string
	}{
		{
			name:    "valid",
			payload: CustomerPayload{Name: strPtr("Ann"), Email: strPtr("ann@example.com"), Phone: strPtr("555-0100")},
		},
		{
			name:    "all missing",
			payload: CustomerPayload{},
			fields:  []string{"name", "email", "phone"},
		},
		{
			name:    "missing phone only",
			payload: CustomerPayload{Name: strPtr("Ann"), Email: strPtr("ann@example.com")},
			fields:  []string{"phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := tt.payload.Validate()
			if len(tt.fields) == 0 {
				assert.Nil(t, verrs)
				return
			}
			assert.Len(t, verrs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verrs, f)
			}
		})
	}
}

func TestProductPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload ProductPayload
		fields  []string
	}{
		{name: "valid", payload: ProductPayload{Name: strPtr("shirt"), Price: floatPtr(19.99)}},
		{name: "zero price accepted", payload: ProductPayload{Name: strPtr("freebie"), Price: floatPtr(0)}},
		{name: "negative price rejected", payload: ProductPayload{Name: strPtr("shirt"), Price: floatPtr(-1)}, fields: []string{"price"}},
		{name: "empty name rejected", payload: ProductPayload{Name: strPtr(""), Price: floatPtr(1)}, fields: []string{"name"}},
		{name: "missing everything", payload: ProductPayload{}, fields: []string{"name", "price"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := tt.payload.Validate()
			if len(tt.fields) == 0 {
				assert.Nil(t, verrs)
				return
			}
			assert.Len(t, verrs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verrs, f)
			}
		})
	}
}

func TestOrderPayload_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload OrderPayload
		fields  []string
	}{
		{name: "valid", payload: OrderPayload{Date: strPtr("2024-05-01"), CustomerID: intPtr(1)}},
		{name: "product list is allowed", payload: OrderPayload{Date: strPtr("2024-05-01"), ProductID: []int{1, 2}}},
		{name: "missing date", payload: OrderPayload{CustomerID: intPtr(1)}, fields: []string{"date"}},
		{name: "malformed date", payload: OrderPayload{Date: strPtr("05/01/2024")}, fields: []string{"date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := tt.payload.Validate()
			if len(tt.fields) == 0 {
				assert.Nil(t, verrs)
				return
			}
			assert.Len(t, verrs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verrs, f)
			}
		})
	}
}

func TestOrderPayload_Time(t *testing.T) {
	p := OrderPayload{Date: strPtr("2024-05-01")}
	assert.Nil(t, p.Validate())
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), p.Time())
}

func TestOrderPayload_Apply_PartialCustomer(t *testing.T) {
	order := models.Order{OrderID: 7, CustomerID: 3}

	p := OrderPayload{Date: strPtr("2024-06-15")}
	p.Apply(&order)

	assert.Equal(t, 3, order.CustomerID, "absent customer_id must not be overwritten")
	assert.Equal(t, "2024-06-15", order.Date.Format(DateLayout))
}

func TestAccountPayload_Validate(t *testing.T) {
	valid := AccountPayload{Username: strPtr("ann"), Password: strPtr("hunter2"), CustomerID: intPtr(1)}
	assert.Nil(t, valid.Validate())

	missing := AccountPayload{Username: strPtr("ann")}
	verrs := missing.Validate()
	assert.Contains(t, verrs, "password")
	assert.Contains(t, verrs, "customer_id")
	assert.NotContains(t, verrs, "username")
}

func TestNewOrderResponse(t *testing.T) {
	order := models.Order{
		OrderID:    5,
		CustomerID: 2,
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := NewOrderResponse(&order, nil)
	assert.Equal(t, "2024-05-01", resp.Date)
	assert.NotNil(t, resp.ProductID, "product_id must render as [] not null")
	assert.Empty(t, resp.ProductID)

	withProducts := NewOrderResponse(&order, []int{3, 4})
	assert.Equal(t, []int{3, 4}, withProducts.ProductID)
}

func TestNewAccountResponse(t *testing.T) {
	a := models.CustomerAccount{AccountID: 9, Username: "ann", Password: "hunter2", CustomerID: 4}
	resp := NewAccountResponse(&a)
	assert.Equal(t, 4, resp.CustomerID)
	assert.Equal(t, 9, resp.AccountID)
	assert.Equal(t, "ann", resp.Username)
}
