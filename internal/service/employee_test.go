package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/northwind-service/internal/model"
)

func TestCreateEmployee(t *testing.T) {
	svc := NewEmployeeService(newMockEmployeeRepo())

	employee, err := svc.CreateEmployee(context.Background(), EmployeeRequest{
		FirstName: "Nancy",
		LastName:  "Davolio",
		Title:     "Sales Representative",
		Email:     "nancy@northwind.example",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if employee.ID == "" {
		t.Error("expected employee ID to be set")
	}
	if employee.HiredAt.IsZero() {
		t.Error("expected hired_at to be set")
	}
}

func TestCreateEmployeeUnknownManager(t *testing.T) {
	svc := NewEmployeeService(newMockEmployeeRepo())

	manager := "nonexistent"
	_, err := svc.CreateEmployee(context.Background(), EmployeeRequest{
		FirstName: "Nancy",
		LastName:  "Davolio",
		Email:     "nancy@northwind.example",
		ReportsTo: &manager,
	})
	if !errors.Is(err, ErrUnknownReference) {
		t.Errorf("expected ErrUnknownReference, got %v", err)
	}
}

func TestUpdateEmployeeSelfManager(t *testing.T) {
	repo := newMockEmployeeRepo()
	repo.employees["emp-1"] = &model.Employee{ID: "emp-1", FirstName: "Nancy", LastName: "Davolio", Email: "nancy@northwind.example", HiredAt: time.Now()}
	svc := NewEmployeeService(repo)

	self := "emp-1"
	_, err := svc.UpdateEmployee(context.Background(), "emp-1", EmployeeRequest{
		FirstName: "Nancy",
		LastName:  "Davolio",
		Email:     "nancy@northwind.example",
		ReportsTo: &self,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateEmployeeManager(t *testing.T) {
	repo := newMockEmployeeRepo()
	repo.employees["emp-1"] = &model.Employee{ID: "emp-1", FirstName: "Andrew", LastName: "Fuller", Email: "andrew@northwind.example", HiredAt: time.Now()}
	repo.employees["emp-2"] = &model.Employee{ID: "emp-2", FirstName: "Nancy", LastName: "Davolio", Email: "nancy@northwind.example", HiredAt: time.Now()}
	svc := NewEmployeeService(repo)

	manager := "emp-1"
	employee, err := svc.UpdateEmployee(context.Background(), "emp-2", EmployeeRequest{
		FirstName: "Nancy",
		LastName:  "Davolio",
		Title:     "Sales Representative",
		Email:     "nancy@northwind.example",
		ReportsTo: &manager,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if employee.ReportsTo == nil || *employee.ReportsTo != "emp-1" {
		t.Error("expected manager to be assigned")
	}
}
