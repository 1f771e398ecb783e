package repo

import (
	"context"
	"database/sql"

	"github.com/northwind-service/internal/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id string) error
}

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `INSERT INTO customers (id, company_name, contact_name, email, phone, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.CompanyName, customer.ContactName, customer.Email,
		customer.Phone, customer.City, customer.Country)
	return err
}

func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	query := `SELECT id, company_name, contact_name, email, phone, city, country
		FROM customers WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var customer model.Customer
	err := row.Scan(&customer.ID, &customer.CompanyName, &customer.ContactName,
		&customer.Email, &customer.Phone, &customer.City, &customer.Country)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *PostgresCustomerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	query := `SELECT id, company_name, contact_name, email, phone, city, country
		FROM customers ORDER BY company_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var customer model.Customer
		if err := rows.Scan(&customer.ID, &customer.CompanyName, &customer.ContactName,
			&customer.Email, &customer.Phone, &customer.City, &customer.Country); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *PostgresCustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	query := `UPDATE customers SET company_name = $1, contact_name = $2, email = $3,
		phone = $4, city = $5, country = $6 WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		customer.CompanyName, customer.ContactName, customer.Email,
		customer.Phone, customer.City, customer.Country, customer.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresCustomerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
