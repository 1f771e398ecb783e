package service

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/northwind-service/internal/model"
)

type mockOrderRepo struct {
	orders map[string]*model.Order
	mu     sync.RWMutex
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*model.Order)}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepo) GetAll(ctx context.Context, customerID string) ([]model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []model.Order
	for _, o := range m.orders {
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		result = append(result, *o)
	}
	return result, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, order *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.orders[order.ID]
	if !ok {
		return sql.ErrNoRows
	}
	existing.CustomerID = order.CustomerID
	existing.EmployeeID = order.EmployeeID
	existing.Freight = order.Freight
	return nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	order.Status = status
	return nil
}

func (m *mockOrderRepo) Ship(ctx context.Context, id, shipperID string, shippedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return sql.ErrNoRows
	}
	order.Status = model.StatusShipped
	order.ShipperID = &shipperID
	order.ShippedAt = &shippedAt
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) TotalsByID(ctx context.Context, id string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return order.Total(), nil
}

func (m *mockOrderRepo) SalesByCategory(ctx context.Context) ([]model.CategorySales, error) {
	return nil, nil
}

func (m *mockOrderRepo) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
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

type mockProductRepo struct {
	products     map[string]*model.Product
	detailCounts map[string]int
	mu           sync.RWMutex
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products:     make(map[string]*model.Product),
		detailCounts: make(map[string]int),
	}
}

func (m *mockProductRepo) Create(ctx context.Context, product *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *product
	return &copied, nil
}

func (m *mockProductRepo) GetAll(ctx context.Context) ([]model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []model.Product
	for _, p := range m.products {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return sql.ErrNoRows
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) CountOrderDetails(ctx context.Context, id string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.detailCounts[id], nil
}

type mockCustomerRepo struct {
	customers map[string]*model.Customer
	mu        sync.RWMutex
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[string]*model.Customer)}
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	customer, ok := m.customers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *customer
	return &copied, nil
}

func (m *mockCustomerRepo) GetAll(ctx context.Context) ([]model.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []model.Customer
	for _, c := range m.customers {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[customer.ID]; !ok {
		return sql.ErrNoRows
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.customers, id)
	return nil
}

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	mu        sync.RWMutex
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[employee.ID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	employee, ok := m.employees[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *employee
	return &copied, nil
}

func (m *mockEmployeeRepo) GetAll(ctx context.Context) ([]model.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[employee.ID]; !ok {
		return sql.ErrNoRows
	}
	m.employees[employee.ID] = employee
	return nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.employees, id)
	return nil
}

type mockShipperRepo struct {
	shippers map[string]*model.Shipper
	mu       sync.RWMutex
}

func newMockShipperRepo() *mockShipperRepo {
	return &mockShipperRepo{shippers: make(map[string]*model.Shipper)}
}

func (m *mockShipperRepo) Create(ctx context.Context, shipper *model.Shipper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shippers[shipper.ID] = shipper
	return nil
}

func (m *mockShipperRepo) GetByID(ctx context.Context, id string) (*model.Shipper, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	shipper, ok := m.shippers[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *shipper
	return &copied, nil
}

func (m *mockShipperRepo) GetAll(ctx context.Context) ([]model.Shipper, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []model.Shipper
	for _, s := range m.shippers {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockShipperRepo) Update(ctx context.Context, shipper *model.Shipper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shippers[shipper.ID]; !ok {
		return sql.ErrNoRows
	}
	m.shippers[shipper.ID] = shipper
	return nil
}

func (m *mockShipperRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shippers[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.shippers, id)
	return nil
}

type mockCategoryRepo struct {
	categories    map[string]*model.Category
	productCounts map[string]int
	mu            sync.RWMutex
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{
		categories:    make(map[string]*model.Category),
		productCounts: make(map[string]int),
	}
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	category, ok := m.categories[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *category
	return &copied, nil
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []model.Category
	for _, c := range m.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return sql.ErrNoRows
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) CountProducts(ctx context.Context, id string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.productCounts[id], nil
}

type mockPublisher struct {
	published []interface{}
	channels  []string
	mu        sync.Mutex
}

func (m *mockPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, message)
	m.channels = append(m.channels, channel)
	return nil
}
