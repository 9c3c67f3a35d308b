package schemas

import "github.com/spncrkm/e-commerce-project/models"

// ProductPayload is the request body for creating or updating a product.
type ProductPayload struct {
	ProductID *int     `json:"product_id"`
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
}

func (p *ProductPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Name == nil {
		errs["name"] = msgRequired
	} else if len(*p.Name) < 1 {
		errs["name"] = "must be at least 1 character"
	}
	if p.Price == nil {
		errs["price"] = msgRequired
	} else if *p.Price < 0 {
		errs["price"] = "must be greater than or equal to 0"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *ProductPayload) Apply(product *models.Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
}

// ProductResponse fixes the outbound field set and order for products.
type ProductResponse struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
	}
}

func NewProductListResponse(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
