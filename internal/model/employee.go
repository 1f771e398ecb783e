package model

import "time"

type Employee struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	ReportsTo *string   `json:"reports_to,omitempty"`
	HiredAt   time.Time `json:"hired_at"`
}

type Shipper struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone,omitempty"`
}
