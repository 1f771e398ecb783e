package repo

import (
	"context"
	"database/sql"

	"github.com/northwind-service/internal/model"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetAll(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id string) error
}

type PostgresEmployeeRepository struct {
	db *sql.DB
}

func NewPostgresEmployeeRepository(db *sql.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	query := `INSERT INTO employees (id, first_name, last_name, title, email, reports_to, hired_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		employee.ID, employee.FirstName, employee.LastName, employee.Title,
		employee.Email, employee.ReportsTo, employee.HiredAt)
	return err
}

func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	query := `SELECT id, first_name, last_name, title, email, reports_to, hired_at
		FROM employees WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var employee model.Employee
	err := row.Scan(&employee.ID, &employee.FirstName, &employee.LastName,
		&employee.Title, &employee.Email, &employee.ReportsTo, &employee.HiredAt)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *PostgresEmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT id, first_name, last_name, title, email, reports_to, hired_at
		FROM employees ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var employee model.Employee
		if err := rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName,
			&employee.Title, &employee.Email, &employee.ReportsTo, &employee.HiredAt); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (r *PostgresEmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	query := `UPDATE employees SET first_name = $1, last_name = $2, title = $3,
		email = $4, reports_to = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query,
		employee.FirstName, employee.LastName, employee.Title,
		employee.Email, employee.ReportsTo, employee.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM employees WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
