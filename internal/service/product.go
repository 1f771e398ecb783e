package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/northwind-service/internal/cache"
	"github.com/northwind-service/internal/logger"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/repo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ProductService struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	cache      *cache.ProductCache
}

func NewProductService(products repo.ProductRepository, categories repo.CategoryRepository, productCache *cache.ProductCache) *ProductService {
	return &ProductService{products: products, categories: categories, cache: productCache}
}

type CreateProductRequest struct {
	Name         string  `json:"name"`
	CategoryID   string  `json:"category_id"`
	UnitPrice    float64 `json:"unit_price"`
	UnitsInStock int     `json:"units_in_stock"`
}

type UpdateProductRequest struct {
	Name         string  `json:"name"`
	CategoryID   string  `json:"category_id"`
	UnitPrice    float64 `json:"unit_price"`
	UnitsInStock int     `json:"units_in_stock"`
	Discontinued bool    `json:"discontinued"`
}

func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*model.Product, error) {
	log := logger.FromContext(ctx)

	if err := validateProduct(req.Name, req.UnitPrice, req.UnitsInStock); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:           uuid.New().String(),
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		UnitPrice:    req.UnitPrice,
		UnitsInStock: req.UnitsInStock,
	}

	if err := s.products.Create(ctx, product); err != nil {
		log.Error("postgres: failed to create product", zap.Error(err))
		return nil, err
	}

	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.products.GetByID(ctx, id)
}

// GetProducts serves the catalog from Redis when possible and falls back to
// Postgres, repopulating the cache on the way out.
func (s *ProductService) GetProducts(ctx context.Context) ([]model.Product, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		products, err := s.cache.GetList(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Warn("redis: product cache read failed", zap.Error(err))
		}
	}

	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, products); err != nil {
			log.Warn("redis: product cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*model.Product, error) {
	log := logger.FromContext(ctx)

	if err := validateProduct(req.Name, req.UnitPrice, req.UnitsInStock); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}

	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.CategoryID = req.CategoryID
	product.UnitPrice = req.UnitPrice
	product.UnitsInStock = req.UnitsInStock
	product.Discontinued = req.Discontinued

	if err := s.products.Update(ctx, product); err != nil {
		log.Error("postgres: failed to update product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.products.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.products.CountOrderDetails(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: product %s appears in %d order lines", ErrInUse, id, count)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		log.Error("postgres: failed to delete product", zap.String("product_id", id), zap.Error(err))
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) checkCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: category %s", ErrUnknownReference, categoryID)
		}
		return err
	}
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn("redis: product cache invalidation failed", zap.Error(err))
	}
}

func validateProduct(name string, unitPrice float64, unitsInStock int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if unitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", ErrInvalidInput)
	}
	if unitsInStock < 0 {
		return fmt.Errorf("%w: units in stock must not be negative", ErrInvalidInput)
	}
	return nil
}
