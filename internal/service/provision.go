package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
	"shipperd-backend/internal/repository"
)

type lockerProvisioner struct {
	warehouseRepo repository.WarehouseRepository
	lockerTx      repository.LockerTxRunner
}

// NewLockerProvisioner builds the hook that assigns one locker per existing
// warehouse to a freshly created customer.
func NewLockerProvisioner(warehouseRepo repository.WarehouseRepository, lockerTx repository.LockerTxRunner) LockerProvisioner {
	return &lockerProvisioner{
		warehouseRepo: warehouseRepo,
		lockerTx:      lockerTx,
	}
}

// ProvisionForUser creates one locker per warehouse that exists right now.
// The whole loop runs in a single transaction, so a fault anywhere aborts
// every locker for this user. Warehouses added later are not provisioned
// retroactively.
func (p *lockerProvisioner) ProvisionForUser(ctx context.Context, user *domain.User) ([]domain.Locker, error) {
	if user.EffectiveRole() != domain.RoleCustomer {
		return nil, nil
	}

	warehouses, err := p.warehouseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list warehouses for provisioning: %w", err)
	}
	if len(warehouses) == 0 {
		return nil, nil
	}

	var created []domain.Locker
	err = p.lockerTx.WithinTx(ctx, func(lockers repository.LockerRepository) error {
		for _, wh := range warehouses {
			count, err := lockers.CountByCustomerAndWarehouse(ctx, user.ID, wh.ID)
			if err != nil {
				return fmt.Errorf("count lockers at warehouse %d: %w", wh.ID, err)
			}

			code := lockerCode(&wh, user.Username, count+1)
			exists, err := lockers.CodeExists(ctx, code)
			if err != nil {
				return fmt.Errorf("check locker code %q: %w", code, err)
			}
			if exists {
				code = alternateLockerCode(&wh, user.Username)
			}

			locker := domain.Locker{
				Code:        code,
				Description: fmt.Sprintf("Auto-assigned locker for %s", user.Username),
				CustomerID:  user.ID,
				WarehouseID: wh.ID,
			}
			if err := lockers.Create(ctx, &locker); err != nil {
				return fmt.Errorf("create locker %q: %w", code, err)
			}
			created = append(created, locker)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Lockers provisioned", "user_id", user.ID, "count", len(created))
	return created, nil
}

// lockerCode derives the primary code: warehouse prefix from the city (or
// the name when the city is absent), the first 5 letters of the username,
// and a 3-digit per-warehouse sequence number.
func lockerCode(wh *domain.Warehouse, username string, sequence int32) string {
	return fmt.Sprintf("%s-%s-%03d", warehousePrefix(wh), usernamePrefix(username), sequence)
}

// alternateLockerCode is the fallback on a global code collision: an ALT tag
// plus 3 digits derived from the current time.
func alternateLockerCode(wh *domain.Warehouse, username string) string {
	return fmt.Sprintf("%s-%s-ALT%03d", warehousePrefix(wh), usernamePrefix(username), time.Now().UnixNano()%1000)
}

func warehousePrefix(wh *domain.Warehouse) string {
	source := wh.City
	if source == "" {
		source = wh.Name
	}
	return truncateUpper(source, 3)
}

func usernamePrefix(username string) string {
	return truncateUpper(username, 5)
}

func truncateUpper(s string, n int) string {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(s) > n {
		s = s[:n]
	}
	return s
}
