package http

import (
	"context"
	"database/sql"
	"time"

	"github.com/northwind-service/internal/model"
)

// In-memory repositories for routing tests. No locking: each test drives the
// router from a single goroutine.

type memOrders struct {
	orders map[string]*model.Order
}

func (m *memOrders) Create(_ context.Context, o *model.Order) error {
	m.orders[o.ID] = o
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*model.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *o
	return &copied, nil
}

func (m *memOrders) GetAll(_ context.Context, customerID string) ([]model.Order, error) {
	var result []model.Order
	for _, o := range m.orders {
		if customerID == "" || o.CustomerID == customerID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (m *memOrders) Update(_ context.Context, o *model.Order) error {
	existing, ok := m.orders[o.ID]
	if !ok {
		return sql.ErrNoRows
	}
	existing.CustomerID = o.CustomerID
	existing.EmployeeID = o.EmployeeID
	existing.Freight = o.Freight
	return nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := m.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = status
	return nil
}

func (m *memOrders) Ship(_ context.Context, id, shipperID string, shippedAt time.Time) error {
	o, ok := m.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.Status = model.StatusShipped
	o.ShipperID = &shipperID
	o.ShippedAt = &shippedAt
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	if _, ok := m.orders[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.orders, id)
	return nil
}

func (m *memOrders) TotalsByID(_ context.Context, id string) (float64, error) {
	o, ok := m.orders[id]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return o.Total(), nil
}

func (m *memOrders) SalesByCategory(_ context.Context) ([]model.CategorySales, error) {
	return []model.CategorySales{{CategoryID: "cat-1", CategoryName: "Beverages", UnitsSold: 2, Revenue: 36.00}}, nil
}

func (m *memOrders) CountByStatus(_ context.Context) ([]model.StatusCount, error) {
	counts := make(map[string]int)
	for _, o := range m.orders {
		counts[o.Status]++
	}
	var result []model.StatusCount
	for status, count := range counts {
		result = append(result, model.StatusCount{Status: status, Count: count})
	}
	return result, nil
}

type memProducts struct {
	products     map[string]*model.Product
	detailCounts map[string]int
}

func (m *memProducts) Create(_ context.Context, p *model.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (m *memProducts) GetAll(_ context.Context) ([]model.Product, error) {
	var result []model.Product
	for _, p := range m.products {
		result = append(result, *p)
	}
	return result, nil
}

func (m *memProducts) Update(_ context.Context, p *model.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return sql.ErrNoRows
	}
	m.products[p.ID] = p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.products, id)
	return nil
}

func (m *memProducts) CountOrderDetails(_ context.Context, id string) (int, error) {
	return m.detailCounts[id], nil
}

type memCustomers struct {
	customers map[string]*model.Customer
}

func (m *memCustomers) Create(_ context.Context, c *model.Customer) error {
	m.customers[c.ID] = c
	return nil
}

func (m *memCustomers) GetByID(_ context.Context, id string) (*model.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (m *memCustomers) GetAll(_ context.Context) ([]model.Customer, error) {
	var result []model.Customer
	for _, c := range m.customers {
		result = append(result, *c)
	}
	return result, nil
}

func (m *memCustomers) Update(_ context.Context, c *model.Customer) error {
	if _, ok := m.customers[c.ID]; !ok {
		return sql.ErrNoRows
	}
	m.customers[c.ID] = c
	return nil
}

func (m *memCustomers) Delete(_ context.Context, id string) error {
	if _, ok := m.customers[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.customers, id)
	return nil
}

type memEmployees struct {
	employees map[string]*model.Employee
}

func (m *memEmployees) Create(_ context.Context, e *model.Employee) error {
	m.employees[e.ID] = e
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id string) (*model.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *e
	return &copied, nil
}

func (m *memEmployees) GetAll(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	return result, nil
}

func (m *memEmployees) Update(_ context.Context, e *model.Employee) error {
	if _, ok := m.employees[e.ID]; !ok {
		return sql.ErrNoRows
	}
	m.employees[e.ID] = e
	return nil
}

func (m *memEmployees) Delete(_ context.Context, id string) error {
	if _, ok := m.employees[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.employees, id)
	return nil
}

type memShippers struct {
	shippers map[string]*model.Shipper
}

func (m *memShippers) Create(_ context.Context, s *model.Shipper) error {
	m.shippers[s.ID] = s
	return nil
}

func (m *memShippers) GetByID(_ context.Context, id string) (*model.Shipper, error) {
	s, ok := m.shippers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *s
	return &copied, nil
}

func (m *memShippers) GetAll(_ context.Context) ([]model.Shipper, error) {
	var result []model.Shipper
	for _, s := range m.shippers {
		result = append(result, *s)
	}
	return result, nil
}

func (m *memShippers) Update(_ context.Context, s *model.Shipper) error {
	if _, ok := m.shippers[s.ID]; !ok {
		return sql.ErrNoRows
	}
	m.shippers[s.ID] = s
	return nil
}

func (m *memShippers) Delete(_ context.Context, id string) error {
	if _, ok := m.shippers[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.shippers, id)
	return nil
}

type memCategories struct {
	categories    map[string]*model.Category
	productCounts map[string]int
}

func (m *memCategories) Create(_ context.Context, c *model.Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*model.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (m *memCategories) GetAll(_ context.Context) ([]model.Category, error) {
	var result []model.Category
	for _, c := range m.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (m *memCategories) Update(_ context.Context, c *model.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return sql.ErrNoRows
	}
	m.categories[c.ID] = c
	return nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.categories, id)
	return nil
}

func (m *memCategories) CountProducts(_ context.Context, id string) (int, error) {
	return m.productCounts[id], nil
}
