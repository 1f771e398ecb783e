package repo

import (
	"context"
	"database/sql"

	"github.com/northwind-service/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
	CountOrderDetails(ctx context.Context, id string) (int, error)
}

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (id, name, category_id, unit_price, units_in_stock, discontinued)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.CategoryID, product.UnitPrice, product.UnitsInStock, product.Discontinued)
	return err
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT id, name, category_id, unit_price, units_in_stock, discontinued
		FROM products WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var product model.Product
	err := row.Scan(&product.ID, &product.Name, &product.CategoryID,
		&product.UnitPrice, &product.UnitsInStock, &product.Discontinued)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, category_id, unit_price, units_in_stock, discontinued
		FROM products ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.CategoryID,
			&product.UnitPrice, &product.UnitsInStock, &product.Discontinued); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) Update(ctx context.Context, product *model.Product) error {
	query := `UPDATE products SET name = $1, category_id = $2, unit_price = $3,
		units_in_stock = $4, discontinued = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.CategoryID, product.UnitPrice, product.UnitsInStock, product.Discontinued, product.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresProductRepository) CountOrderDetails(ctx context.Context, id string) (int, error) {
	query := `SELECT COUNT(*) FROM order_details WHERE product_id = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
