package service

import (
	"context"
	"fmt"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

type statsService struct {
	boxRepo  repository.BoxRepository
	userRepo repository.UserRepository
}

func NewStatsService(boxRepo repository.BoxRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{boxRepo: boxRepo, userRepo: userRepo}
}

func (s *statsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalBoxes, err := s.boxRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count boxes: %w", err)
	}
	inTransit, err := s.boxRepo.CountByStatus(ctx, domain.BoxStatusInTransit)
	if err != nil {
		return nil, fmt.Errorf("count boxes in transit: %w", err)
	}
	customers, err := s.userRepo.CountCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	return &DashboardStats{
		TotalBoxes:     totalBoxes,
		BoxesInTransit: inTransit,
		TotalCustomers: customers,
	}, nil
}
