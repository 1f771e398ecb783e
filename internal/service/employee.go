package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/northwind-service/internal/logger"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/repo"
	"go.uber.org/zap"
)

type EmployeeService struct {
	employees repo.EmployeeRepository
}

func NewEmployeeService(employees repo.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

type EmployeeRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Title     string  `json:"title"`
	Email     string  `json:"email"`
	ReportsTo *string `json:"reports_to"`
}

func (r EmployeeRequest) validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req EmployeeRequest) (*model.Employee, error) {
	log := logger.FromContext(ctx)

	if err := req.validate(); err != nil {
		return nil, err
	}
	if err := s.checkManager(ctx, req.ReportsTo, ""); err != nil {
		return nil, err
	}

	employee := &model.Employee{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Email:     req.Email,
		ReportsTo: req.ReportsTo,
		HiredAt:   time.Now(),
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		log.Error("postgres: failed to create employee", zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.employees.GetAll(ctx)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, req EmployeeRequest) (*model.Employee, error) {
	log := logger.FromContext(ctx)

	if err := req.validate(); err != nil {
		return nil, err
	}

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get employee", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}

	if err := s.checkManager(ctx, req.ReportsTo, id); err != nil {
		return nil, err
	}

	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Title = req.Title
	employee.Email = req.Email
	employee.ReportsTo = req.ReportsTo

	if err := s.employees.Update(ctx, employee); err != nil {
		log.Error("postgres: failed to update employee", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.employees.Delete(ctx, id); err != nil {
		log.Error("postgres: failed to delete employee", zap.String("employee_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *EmployeeService) checkManager(ctx context.Context, reportsTo *string, selfID string) error {
	if reportsTo == nil {
		return nil
	}
	if selfID != "" && *reportsTo == selfID {
		return fmt.Errorf("%w: employee cannot report to themselves", ErrInvalidInput)
	}
	if _, err := s.employees.GetByID(ctx, *reportsTo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: employee %s", ErrUnknownReference, *reportsTo)
		}
		return err
	}
	return nil
}
