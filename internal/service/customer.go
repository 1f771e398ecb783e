package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/northwind-service/internal/logger"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/repo"
	"go.uber.org/zap"
)

type CustomerService struct {
	customers repo.CustomerRepository
}

func NewCustomerService(customers repo.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

type CustomerRequest struct {
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

func (r CustomerRequest) validate() error {
	if r.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	if r.ContactName == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req CustomerRequest) (*model.Customer, error) {
	log := logger.FromContext(ctx)

	if err := req.validate(); err != nil {
		return nil, err
	}

	customer := &model.Customer{
		ID:          uuid.New().String(),
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		City:        req.City,
		Country:     req.Country,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		log.Error("postgres: failed to create customer", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.customers.GetAll(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id string, req CustomerRequest) (*model.Customer, error) {
	log := logger.FromContext(ctx)

	if err := req.validate(); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get customer", zap.String("customer_id", id), zap.Error(err))
		return nil, err
	}

	customer.CompanyName = req.CompanyName
	customer.ContactName = req.ContactName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.City = req.City
	customer.Country = req.Country

	if err := s.customers.Update(ctx, customer); err != nil {
		log.Error("postgres: failed to update customer", zap.String("customer_id", id), zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.customers.Delete(ctx, id); err != nil {
		log.Error("postgres: failed to delete customer", zap.String("customer_id", id), zap.Error(err))
		return err
	}
	return nil
}
