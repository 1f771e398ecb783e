package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/northwind-service/internal/events"
	"github.com/northwind-service/internal/logger"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/repo"
	"go.uber.org/zap"
)

const (
	OrderCreatedChannel = "order.created"
	OrderUpdatedChannel = "order.updated"
	OrderDeletedChannel = "order.deleted"
)

type OrderService struct {
	orders    repo.OrderRepository
	products  repo.ProductRepository
	customers repo.CustomerRepository
	employees repo.EmployeeRepository
	shippers  repo.ShipperRepository
	publisher events.Publisher
}

func NewOrderService(
	orders repo.OrderRepository,
	products repo.ProductRepository,
	customers repo.CustomerRepository,
	employees repo.EmployeeRepository,
	shippers repo.ShipperRepository,
	publisher events.Publisher,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		customers: customers,
		employees: employees,
		shippers:  shippers,
		publisher: publisher,
	}
}

type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Discount  float64 `json:"discount"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	EmployeeID string             `json:"employee_id"`
	Freight    float64            `json:"freight"`
	Items      []OrderItemRequest `json:"items"`
}

type UpdateOrderRequest struct {
	CustomerID string  `json:"customer_id"`
	EmployeeID string  `json:"employee_id"`
	Freight    float64 `json:"freight"`
}

func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*model.Order, error) {
	log := logger.FromContext(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrInvalidInput)
	}
	if req.Freight < 0 {
		return nil, fmt.Errorf("%w: freight must not be negative", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
		}
		if item.Discount < 0 || item.Discount >= 1 {
			return nil, fmt.Errorf("%w: discount must be in [0, 1)", ErrInvalidInput)
		}
		if seen[item.ProductID] {
			return nil, fmt.Errorf("%w: duplicate product %s", ErrInvalidInput, item.ProductID)
		}
		seen[item.ProductID] = true
	}

	if err := s.checkCustomerAndEmployee(ctx, req.CustomerID, req.EmployeeID); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:         uuid.New().String(),
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		Status:     model.StatusPending,
		Freight:    req.Freight,
		OrderDate:  time.Now(),
	}

	// Snapshot the current catalog price into each line item.
	for _, item := range req.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: product %s", ErrUnknownReference, item.ProductID)
			}
			return nil, err
		}
		if product.Discontinued {
			return nil, fmt.Errorf("%w: product %s is discontinued", ErrInvalidInput, item.ProductID)
		}
		order.Details = append(order.Details, model.OrderDetail{
			OrderID:   order.ID,
			ProductID: product.ID,
			UnitPrice: product.UnitPrice,
			Quantity:  item.Quantity,
			Discount:  item.Discount,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		log.Error("postgres: failed to create order", zap.Error(err))
		return nil, err
	}

	s.publish(ctx, OrderCreatedChannel, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) GetOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	return s.orders.GetAll(ctx, customerID)
}

func (s *OrderService) UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (*model.Order, error) {
	log := logger.FromContext(ctx)

	if req.Freight < 0 {
		return nil, fmt.Errorf("%w: freight must not be negative", ErrInvalidInput)
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	if err := s.checkCustomerAndEmployee(ctx, req.CustomerID, req.EmployeeID); err != nil {
		return nil, err
	}

	order.CustomerID = req.CustomerID
	order.EmployeeID = req.EmployeeID
	order.Freight = req.Freight

	if err := s.orders.Update(ctx, order); err != nil {
		log.Error("postgres: failed to update order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	s.publish(ctx, OrderUpdatedChannel, order)
	return order, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	log := logger.FromContext(ctx)

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get order", zap.String("order_id", id), zap.Error(err))
		return err
	}

	// shipping assigns a shipper and stamps shipped_at; only ShipOrder may
	// perform that transition
	if status == model.StatusShipped {
		return fmt.Errorf("%w: orders are shipped via ship, not a status update", ErrInvalidTransition)
	}

	if !order.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		log.Error("postgres: failed to update order status", zap.String("order_id", id), zap.Error(err))
		return err
	}

	order.Status = status
	s.publish(ctx, OrderUpdatedChannel, order)
	log.Info("order status updated", zap.String("order_id", id), zap.String("status", status))
	return nil
}

// ShipOrder assigns a shipper to a confirmed order and stamps the shipping
// time.
func (s *OrderService) ShipOrder(ctx context.Context, id string, shipperID string) (*model.Order, error) {
	log := logger.FromContext(ctx)

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	if !order.CanTransition(model.StatusShipped) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, model.StatusShipped)
	}

	if _, err := s.shippers.GetByID(ctx, shipperID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: shipper %s", ErrUnknownReference, shipperID)
		}
		return nil, err
	}

	shippedAt := time.Now()
	if err := s.orders.Ship(ctx, id, shipperID, shippedAt); err != nil {
		log.Error("postgres: failed to ship order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	order.Status = model.StatusShipped
	order.ShipperID = &shipperID
	order.ShippedAt = &shippedAt

	s.publish(ctx, OrderUpdatedChannel, order)
	log.Info("order shipped", zap.String("order_id", id), zap.String("shipper_id", shipperID))
	return order, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, id string) error {
	return s.UpdateOrderStatus(ctx, id, model.StatusCancelled)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get order", zap.String("order_id", id), zap.Error(err))
		return err
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		log.Error("postgres: failed to delete order", zap.String("order_id", id), zap.Error(err))
		return err
	}

	s.publish(ctx, OrderDeletedChannel, order)
	return nil
}

// OrderTotal aggregates an order's line items plus freight in SQL, so the
// figure matches the stored rows rather than an in-memory recomputation.
func (s *OrderService) OrderTotal(ctx context.Context, id string) (float64, error) {
	return s.orders.TotalsByID(ctx, id)
}

func (s *OrderService) SalesByCategory(ctx context.Context) ([]model.CategorySales, error) {
	return s.orders.SalesByCategory(ctx)
}

func (s *OrderService) OrderStats(ctx context.Context) ([]model.StatusCount, error) {
	return s.orders.CountByStatus(ctx)
}

func (s *OrderService) checkCustomerAndEmployee(ctx context.Context, customerID, employeeID string) error {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: customer %s", ErrUnknownReference, customerID)
		}
		return err
	}
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: employee %s", ErrUnknownReference, employeeID)
		}
		return err
	}
	return nil
}

func (s *OrderService) publish(ctx context.Context, channel string, order *model.Order) {
	if s.publisher == nil {
		return
	}
	log := logger.FromContext(ctx)
	if err := s.publisher.Publish(ctx, channel, order); err != nil {
		log.Error("failed to publish event", zap.String("channel", channel), zap.Error(err))
		return
	}
	log.Info("event published", zap.String("channel", channel), zap.String("order_id", order.ID))
}
