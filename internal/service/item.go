package service

import (
	"context"
	"errors"
	"fmt"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
)

var (
	ErrInvalidStatus = errors.New("invalid status value")
	ErrItemNotFound  = errors.New("item not found")
)

type itemService struct {
	itemRepo repository.ItemRepository
	logRepo  repository.StatusLogRepository
}

func NewItemService(itemRepo repository.ItemRepository, logRepo repository.StatusLogRepository) ItemService {
	return &itemService{itemRepo: itemRepo, logRepo: logRepo}
}

func (s *itemService) ScanIn(ctx context.Context, item *domain.Item) error {
	if item.TrackingNumber == "" {
		return errors.New("tracking number is required")
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAwaitingArrival
	}
	if !item.Status.Valid() {
		return ErrInvalidStatus
	}
	if item.Condition == "" {
		item.Condition = domain.ItemConditionOK
	}
	if !item.Condition.Valid() {
		return errors.New("invalid condition value")
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *itemService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.ListWithCustomer(ctx)
}

// SetStatus updates the item status and appends an audit entry. The closed
// set is the only guard: any valid status may follow any other.
func (s *itemService) SetStatus(ctx context.Context, actorID, itemID int32, status domain.ItemStatus, note string) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.itemRepo.UpdateStatus(ctx, itemID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("update item status: %w", err)
	}

	entry := &domain.StatusLog{
		EntityType:  domain.EntityTypeItem,
		EntityID:    itemID,
		Status:      string(status),
		Note:        note,
		ChangedByID: &actorID,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		// The status change already landed; losing the audit entry is
		// logged but does not fail the operation.
		logger.Error("Status log append failed", "entity_type", domain.EntityTypeItem, "entity_id", itemID, "error", err)
	}
	return nil
}
