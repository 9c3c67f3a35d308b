package schemas

import "github.com/spncrkm/e-commerce-project/models"

// AccountPayload is the request body for creating or updating a customer
// account. All account operations validate against this schema.
type AccountPayload struct {
	AccountID  *int    `json:"account_id"`
	Username   *string `json:"username"`
	Password   *string `json:"password"`
	CustomerID *int    `json:"customer_id"`
}

func (p *AccountPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Username == nil {
		errs["username"] = msgRequired
	}
	if p.Password == nil {
		errs["password"] = msgRequired
	}
	if p.CustomerID == nil {
		errs["customer_id"] = msgRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *AccountPayload) Apply(a *models.CustomerAccount) {
	if p.Username != nil {
		a.Username = *p.Username
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.CustomerID != nil {
		a.CustomerID = *p.CustomerID
	}
}

// AccountResponse fixes the outbound field set and order for accounts.
type AccountResponse struct {
	CustomerID int    `json:"customer_id"`
	AccountID  int    `json:"account_id"`
	Password   string `json:"password"`
	Username   string `json:"username"`
}

func NewAccountResponse(a *models.CustomerAccount) AccountResponse {
	return AccountResponse{
		CustomerID: a.CustomerID,
		AccountID:  a.AccountID,
		Password:   a.Password,
		Username:   a.Username,
	}
}
