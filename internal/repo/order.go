package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/northwind-service/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetAll(ctx context.Context, customerID string) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id, status string) error
	Ship(ctx context.Context, id, shipperID string, shippedAt time.Time) error
	Delete(ctx context.Context, id string) error
	TotalsByID(ctx context.Context, id string) (float64, error)
	SalesByCategory(ctx context.Context) ([]model.CategorySales, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
}

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Create inserts the order header and all line items in one transaction.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *model.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO orders (id, customer_id, employee_id, shipper_id, status, freight, order_date, shipped_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.ExecContext(ctx, query,
		order.ID, order.CustomerID, order.EmployeeID, order.ShipperID,
		order.Status, order.Freight, order.OrderDate, order.ShippedAt); err != nil {
		return err
	}

	detailQuery := `INSERT INTO order_details (order_id, product_id, unit_price, quantity, discount)
		VALUES ($1, $2, $3, $4, $5)`
	for _, d := range order.Details {
		if _, err := tx.ExecContext(ctx, detailQuery,
			d.OrderID, d.ProductID, d.UnitPrice, d.Quantity, d.Discount); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT id, customer_id, employee_id, shipper_id, status, freight, order_date, shipped_at
		FROM orders WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var order model.Order
	err := row.Scan(&order.ID, &order.CustomerID, &order.EmployeeID, &order.ShipperID,
		&order.Status, &order.Freight, &order.OrderDate, &order.ShippedAt)
	if err != nil {
		return nil, err
	}

	details, err := r.getDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Details = details
	return &order, nil
}

func (r *PostgresOrderRepository) getDetails(ctx context.Context, orderID string) ([]model.OrderDetail, error) {
	query := `SELECT order_id, product_id, unit_price, quantity, discount
		FROM order_details WHERE order_id = $1 ORDER BY product_id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []model.OrderDetail
	for rows.Next() {
		var d model.OrderDetail
		if err := rows.Scan(&d.OrderID, &d.ProductID, &d.UnitPrice, &d.Quantity, &d.Discount); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// GetAll lists order headers newest first. Details are not loaded; use
// GetByID for the full order. Pass an empty customerID for no filter.
func (r *PostgresOrderRepository) GetAll(ctx context.Context, customerID string) ([]model.Order, error) {
	query := `SELECT id, customer_id, employee_id, shipper_id, status, freight, order_date, shipped_at
		FROM orders ORDER BY order_date DESC`
	args := []interface{}{}
	if customerID != "" {
		query = `SELECT id, customer_id, employee_id, shipper_id, status, freight, order_date, shipped_at
		FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`
		args = append(args, customerID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var order model.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.EmployeeID, &order.ShipperID,
			&order.Status, &order.Freight, &order.OrderDate, &order.ShippedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) Update(ctx context.Context, order *model.Order) error {
	query := `UPDATE orders SET customer_id = $1, employee_id = $2, freight = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, order.CustomerID, order.EmployeeID, order.Freight, order.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresOrderRepository) Ship(ctx context.Context, id, shipperID string, shippedAt time.Time) error {
	query := `UPDATE orders SET status = $1, shipper_id = $2, shipped_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, model.StatusShipped, shipperID, shippedAt, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

// Delete removes the order and its line items in one transaction.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_details WHERE order_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := requireRowsAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}

// TotalsByID computes freight plus the discounted sum of an order's line
// items. Returns sql.ErrNoRows when the order does not exist.
func (r *PostgresOrderRepository) TotalsByID(ctx context.Context, id string) (float64, error) {
	query := `SELECT o.freight + COALESCE(SUM(od.unit_price * od.quantity * (1 - od.discount)), 0)
		FROM orders o
		LEFT JOIN order_details od ON od.order_id = o.id
		WHERE o.id = $1
		GROUP BY o.freight`
	var total float64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// SalesByCategory aggregates units sold and discounted revenue per category
// over all non-cancelled orders. Line items are restricted to non-cancelled
// orders inside the derived table so empty categories still report zeros.
func (r *PostgresOrderRepository) SalesByCategory(ctx context.Context) ([]model.CategorySales, error) {
	query := `SELECT c.id, c.name,
			COALESCE(SUM(od.quantity), 0),
			COALESCE(SUM(od.unit_price * od.quantity * (1 - od.discount)), 0)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		LEFT JOIN (
			SELECT od.product_id, od.quantity, od.unit_price, od.discount
			FROM order_details od
			JOIN orders o ON o.id = od.order_id
			WHERE o.status <> 'cancelled'
		) od ON od.product_id = p.id
		GROUP BY c.id, c.name
		ORDER BY c.name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []model.CategorySales
	for rows.Next() {
		var s model.CategorySales
		if err := rows.Scan(&s.CategoryID, &s.CategoryName, &s.UnitsSold, &s.Revenue); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *PostgresOrderRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.StatusCount
	for rows.Next() {
		var c model.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
