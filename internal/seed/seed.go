package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/repo"
	"go.uber.org/zap"
)

// Seeder inserts a small fixed dataset so a fresh deployment has something
// to browse. It is a no-op when the database already holds categories.
type Seeder struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	customers  repo.CustomerRepository
	employees  repo.EmployeeRepository
	shippers   repo.ShipperRepository
	log        *zap.Logger
}

func New(
	categories repo.CategoryRepository,
	products repo.ProductRepository,
	customers repo.CustomerRepository,
	employees repo.EmployeeRepository,
	shippers repo.ShipperRepository,
	log *zap.Logger,
) *Seeder {
	return &Seeder{
		categories: categories,
		products:   products,
		customers:  customers,
		employees:  employees,
		shippers:   shippers,
		log:        log,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.categories.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.Info("seed skipped, data already present", zap.Int("categories", len(existing)))
		return nil
	}

	categories := []model.Category{
		{ID: uuid.New().String(), Name: "Beverages", Description: "Soft drinks, coffees, teas"},
		{ID: uuid.New().String(), Name: "Condiments", Description: "Sauces, relishes, spreads"},
		{ID: uuid.New().String(), Name: "Seafood", Description: "Seaweed and fish"},
	}
	for i := range categories {
		if err := s.categories.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}

	products := []model.Product{
		{ID: uuid.New().String(), Name: "Chai", CategoryID: categories[0].ID, UnitPrice: 18.00, UnitsInStock: 39},
		{ID: uuid.New().String(), Name: "Chang", CategoryID: categories[0].ID, UnitPrice: 19.00, UnitsInStock: 17},
		{ID: uuid.New().String(), Name: "Aniseed Syrup", CategoryID: categories[1].ID, UnitPrice: 10.00, UnitsInStock: 13},
		{ID: uuid.New().String(), Name: "Ikura", CategoryID: categories[2].ID, UnitPrice: 31.00, UnitsInStock: 31},
	}
	for i := range products {
		if err := s.products.Create(ctx, &products[i]); err != nil {
			return err
		}
	}

	customers := []model.Customer{
		{
			ID:          uuid.New().String(),
			CompanyName: "Alfreds Futterkiste",
			ContactName: "Maria Anders",
			Email:       "maria.anders@alfreds.example",
			Phone:       "030-0074321",
			City:        "Berlin",
			Country:     "Germany",
		},
		{
			ID:          uuid.New().String(),
			CompanyName: "Around the Horn",
			ContactName: "Thomas Hardy",
			Email:       "thomas.hardy@aroundthehorn.example",
			Phone:       "(171) 555-7788",
			City:        "London",
			Country:     "UK",
		},
	}
	for i := range customers {
		if err := s.customers.Create(ctx, &customers[i]); err != nil {
			return err
		}
	}

	manager := model.Employee{
		ID:        uuid.New().String(),
		FirstName: "Andrew",
		LastName:  "Fuller",
		Title:     "Vice President, Sales",
		Email:     "andrew.fuller@northwind.example",
		HiredAt:   time.Now(),
	}
	if err := s.employees.Create(ctx, &manager); err != nil {
		return err
	}
	rep := model.Employee{
		ID:        uuid.New().String(),
		FirstName: "Nancy",
		LastName:  "Davolio",
		Title:     "Sales Representative",
		Email:     "nancy.davolio@northwind.example",
		ReportsTo: &manager.ID,
		HiredAt:   time.Now(),
	}
	if err := s.employees.Create(ctx, &rep); err != nil {
		return err
	}

	shippers := []model.Shipper{
		{ID: uuid.New().String(), CompanyName: "Speedy Express", Phone: "(503) 555-9831"},
		{ID: uuid.New().String(), CompanyName: "United Package", Phone: "(503) 555-3199"},
	}
	for i := range shippers {
		if err := s.shippers.Create(ctx, &shippers[i]); err != nil {
			return err
		}
	}

	s.log.Info("seed data inserted",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
		zap.Int("employees", 2),
		zap.Int("shippers", len(shippers)),
	)
	return nil
}
