package schemas

import "github.com/spncrkm/e-commerce-project/models"

// CustomerPayload is the request body for creating or updating a customer.
// Pointer fields distinguish "absent" from zero values.
type CustomerPayload struct {
	CustomerID *int    `json:"customer_id"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
}

func (p *CustomerPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Name == nil {
		errs["name"] = msgRequired
	}
	if p.Email == nil {
		errs["email"] = msgRequired
	}
	if p.Phone == nil {
		errs["phone"] = msgRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Apply copies every field present in the payload onto the customer row.
// The client-supplied customer_id is never applied.
func (p *CustomerPayload) Apply(c *models.Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
}

// CustomerResponse fixes the outbound field set and order for customers.
type CustomerResponse struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func NewCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
	}
}

func NewCustomerListResponse(customers []models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, NewCustomerResponse(&customers[i]))
	}
	return out
}
