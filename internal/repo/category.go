package repo

import (
	"context"
	"database/sql"

	"github.com/northwind-service/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	GetAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	CountProducts(ctx context.Context, id string) (int, error)
}

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Description)
	return err
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	query := `SELECT id, name, description FROM categories WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var category model.Category
	if err := row.Scan(&category.ID, &category.Name, &category.Description); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresCategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name, description FROM categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	query := `UPDATE categories SET name = $1, description = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, category.Name, category.Description, category.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *PostgresCategoryRepository) CountProducts(ctx context.Context, id string) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE category_id = $1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// requireRowsAffected maps a zero-row write to sql.ErrNoRows so callers get
// the same not-found signal reads produce.
func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
