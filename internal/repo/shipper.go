package repo

import (
	"context"
	"database/sql"

	"github.com/northwind-service/internal/model"
)

type ShipperRepository interface {
	Create(ctx context.Context, shipper *model.Shipper) error
	GetByID(ctx context.Context, id string) (*model.Shipper, error)
	GetAll(ctx context.Context) ([]model.Shipper, error)
	Update(ctx context.Context, shipper *model.Shipper) error
	Delete(ctx context.Context, id string) error
}

type PostgresShipperRepository struct {
	db *sql.DB
}

func NewPostgresShipperRepository(db *sql.DB) *PostgresShipperRepository {
	return &PostgresShipperRepository{db: db}
}

func (r *PostgresShipperRepository) Create(ctx context.Context, shipper *model.Shipper) error {
	query := `INSERT INTO shippers (id, company_name, phone) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, shipper.ID, shipper.CompanyName, shipper.Phone)
	return err
}

func (r *PostgresShipperRepository) GetByID(ctx context.Context, id string) (*model.Shipper, error) {
	query := `SELECT id, company_name, phone FROM shippers WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var shipper model.Shipper
	if err := row.Scan(&shipper.ID, &shipper.CompanyName, &shipper.Phone); err != nil {
		return nil, err
	}
	return &shipper, nil
}

func (r *PostgresShipperRepository) GetAll(ctx context.Context) ([]model.Shipper, error) {
	query := `SELECT id, company_name, phone FROM shippers ORDER BY company_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shippers []model.Shipper
	for rows.Next() {
		var shipper model.Shipper
		if err := rows.Scan(&shipper.ID, &shipper.CompanyName, &shipper.Phone); err != nil {
			return nil, err
		}
		shippers = append(shippers, shipper)
	}
	return shippers, rows.Err()
}

func (r *PostgresShipperRepository) Update(ctx context.Context, shipper *model.Shipper) error {
	query := `UPDATE shippers SET company_name = $1, phone = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, shipper.CompanyName, shipper.Phone, shipper.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresShipperRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM shippers WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
