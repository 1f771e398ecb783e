package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/northwind-service/internal/logger"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/repo"
	"go.uber.org/zap"
)

type CategoryService struct {
	categories repo.CategoryRepository
}

func NewCategoryService(categories repo.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *CategoryService) CreateCategory(ctx context.Context, req CategoryRequest) (*model.Category, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	category := &model.Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		log.Error("postgres: failed to create category", zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*model.Category, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get category", zap.String("category_id", id), zap.Error(err))
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categories.Update(ctx, category); err != nil {
		log.Error("postgres: failed to update category", zap.String("category_id", id), zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.categories.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category %s has %d products", ErrInUse, id, count)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		log.Error("postgres: failed to delete category", zap.String("category_id", id), zap.Error(err))
		return err
	}
	return nil
}
