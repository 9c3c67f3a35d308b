package schemas

import (
	"time"

	"github.com/spncrkm/e-commerce-project/models"
)

// DateLayout is the wire format for order dates.
const DateLayout = "2006-01-02"

// OrderPayload is the request body for creating or updating an order.
// The product_id list is accepted for compatibility but order creation does
// not populate the Order_Product join table from it; products are attached
// through the dedicated order-product endpoints.
type OrderPayload struct {
	OrderID    *int    `json:"order_id"`
	CustomerID *int    `json:"customer_id"`
	Date       *string `json:"date"`
	ProductID  []int   `json:"product_id"`
}

func (p *OrderPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Date == nil {
		errs["date"] = msgRequired
	} else if _, err := time.Parse(DateLayout, *p.Date); err != nil {
		errs["date"] = "must be a date in YYYY-MM-DD format"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Time returns the parsed order date. Only meaningful after Validate passed.
func (p *OrderPayload) Time() time.Time {
	t, _ := time.Parse(DateLayout, *p.Date)
	return t
}

func (p *OrderPayload) Apply(o *models.Order) {
	if p.Date != nil {
		o.Date = p.Time()
	}
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
}

// OrderProductPayload is the request body for attaching a product to an order.
type OrderProductPayload struct {
	ProductID *int `json:"product_id"`
}

func (p *OrderProductPayload) Validate() ValidationErrors {
	if p.ProductID == nil {
		return ValidationErrors{"product_id": msgRequired}
	}
	return nil
}

// OrderResponse fixes the outbound field set and order for orders. The
// product_id list reflects the Order_Product join rows.
type OrderResponse struct {
	OrderID    int    `json:"order_id"`
	CustomerID int    `json:"customer_id"`
	Date       string `json:"date"`
	ProductID  []int  `json:"product_id"`
}

func NewOrderResponse(o *models.Order, productIDs []int) OrderResponse {
	if productIDs == nil {
		productIDs = []int{}
	}
	return OrderResponse{
		OrderID:    o.OrderID,
		CustomerID: o.CustomerID,
		Date:       o.Date.Format(DateLayout),
		ProductID:  productIDs,
	}
}
