package service

import (
	"context"
	"errors"
	"fmt"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

var (
	ErrWarehouseNameRequired = errors.New("warehouse name is required")
	ErrWarehouseExists       = errors.New("a warehouse with this name already exists")
)

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, wh *domain.Warehouse) error {
	if wh.Name == "" {
		return ErrWarehouseNameRequired
	}

	_, err := s.warehouseRepo.GetByName(ctx, wh.Name)
	if err == nil {
		return ErrWarehouseExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("check warehouse name: %w", err)
	}

	return s.warehouseRepo.Create(ctx, wh)
}

func (s *warehouseService) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	return s.warehouseRepo.List(ctx)
}
