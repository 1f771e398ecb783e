package model

type Customer struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}
