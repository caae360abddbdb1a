package service

import (
	"context"
	"errors"
	"fmt"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
)

var ErrBoxNotFound = errors.New("box not found")

type boxService struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
	logRepo  repository.StatusLogRepository
}

func NewBoxService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository, logRepo repository.StatusLogRepository) BoxService {
	return &boxService{boxRepo: boxRepo, itemRepo: itemRepo, logRepo: logRepo}
}

func (s *boxService) CreateBox(ctx context.Context, box *domain.InternationalBox) error {
	if box.BoxNumber == "" {
		return errors.New("box number is required")
	}
	if box.Status == "" {
		box.Status = domain.BoxStatusBuilding
	}
	if !box.Status.Valid() {
		return ErrInvalidStatus
	}
	return s.boxRepo.Create(ctx, box)
}

func (s *boxService) GetBox(ctx context.Context, id int32) (*domain.InternationalBox, error) {
	box, err := s.boxRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}
	return box, nil
}

func (s *boxService) ListBoxes(ctx context.Context) ([]domain.InternationalBox, error) {
	return s.boxRepo.ListWithWarehouse(ctx)
}

func (s *boxService) SetStatus(ctx context.Context, actorID, boxID int32, status domain.BoxStatus, note string) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.boxRepo.UpdateStatus(ctx, boxID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBoxNotFound
		}
		return fmt.Errorf("update box status: %w", err)
	}

	entry := &domain.StatusLog{
		EntityType:  domain.EntityTypeBox,
		EntityID:    boxID,
		Status:      string(status),
		Note:        note,
		ChangedByID: &actorID,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		logger.Error("Status log append failed", "entity_type", domain.EntityTypeBox, "entity_id", boxID, "error", err)
	}
	return nil
}

// AddItem links an item into a box, bumps the box aggregates and moves the
// item to in_box.
func (s *boxService) AddItem(ctx context.Context, actorID, boxID, itemID int32, note string) error {
	box, err := s.GetBox(ctx, boxID)
	if err != nil {
		return err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	link := &domain.BoxItem{
		BoxID:     box.ID,
		ItemID:    item.ID,
		AddedByID: &actorID,
		Note:      note,
	}
	if err := s.boxRepo.AddItem(ctx, link, item.WeightKg); err != nil {
		return fmt.Errorf("link item %d into box %d: %w", itemID, boxID, err)
	}

	if err := s.itemRepo.UpdateStatus(ctx, item.ID, domain.ItemStatusInBox); err != nil {
		logger.Error("Item status update after boxing failed", "item_id", item.ID, "error", err)
	}

	entry := &domain.StatusLog{
		EntityType:  domain.EntityTypeItem,
		EntityID:    item.ID,
		Status:      string(domain.ItemStatusInBox),
		Note:        fmt.Sprintf("Added to box %s", box.BoxNumber),
		ChangedByID: &actorID,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		logger.Error("Status log append failed", "entity_type", domain.EntityTypeItem, "entity_id", item.ID, "error", err)
	}
	return nil
}
