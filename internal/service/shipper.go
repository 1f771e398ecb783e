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

type ShipperService struct {
	shippers repo.ShipperRepository
}

func NewShipperService(shippers repo.ShipperRepository) *ShipperService {
	return &ShipperService{shippers: shippers}
}

type ShipperRequest struct {
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
}

func (s *ShipperService) CreateShipper(ctx context.Context, req ShipperRequest) (*model.Shipper, error) {
	log := logger.FromContext(ctx)

	if req.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}

	shipper := &model.Shipper{
		ID:          uuid.New().String(),
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
	}

	if err := s.shippers.Create(ctx, shipper); err != nil {
		log.Error("postgres: failed to create shipper", zap.Error(err))
		return nil, err
	}
	return shipper, nil
}

func (s *ShipperService) GetShipper(ctx context.Context, id string) (*model.Shipper, error) {
	return s.shippers.GetByID(ctx, id)
}

func (s *ShipperService) GetShippers(ctx context.Context) ([]model.Shipper, error) {
	return s.shippers.GetAll(ctx)
}

func (s *ShipperService) UpdateShipper(ctx context.Context, id string, req ShipperRequest) (*model.Shipper, error) {
	log := logger.FromContext(ctx)

	if req.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}

	shipper, err := s.shippers.GetByID(ctx, id)
	if err != nil {
		log.Error("postgres: failed to get shipper", zap.String("shipper_id", id), zap.Error(err))
		return nil, err
	}

	shipper.CompanyName = req.CompanyName
	shipper.Phone = req.Phone

	if err := s.shippers.Update(ctx, shipper); err != nil {
		log.Error("postgres: failed to update shipper", zap.String("shipper_id", id), zap.Error(err))
		return nil, err
	}
	return shipper, nil
}

func (s *ShipperService) DeleteShipper(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.shippers.Delete(ctx, id); err != nil {
		log.Error("postgres: failed to delete shipper", zap.String("shipper_id", id), zap.Error(err))
		return err
	}
	return nil
}
