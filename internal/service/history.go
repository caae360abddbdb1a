package service

import (
	"context"
	"errors"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

var ErrInvalidEntityType = errors.New("invalid entity type")

type historyService struct {
	logRepo repository.StatusLogRepository
}

func NewHistoryService(logRepo repository.StatusLogRepository) HistoryService {
	return &historyService{logRepo: logRepo}
}

func (s *historyService) Timeline(ctx context.Context, entityType domain.EntityType, entityID int32) ([]domain.StatusLog, error) {
	if !entityType.Valid() {
		return nil, ErrInvalidEntityType
	}
	return s.logRepo.ListByEntity(ctx, entityType, entityID)
}
