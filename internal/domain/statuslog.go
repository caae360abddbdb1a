package domain

import "time"

type EntityType string

const (
	EntityTypeItem                EntityType = "item"
	EntityTypeBox                 EntityType = "box"
	EntityTypeShipmentDestination EntityType = "shipment_destination"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeItem, EntityTypeBox, EntityTypeShipmentDestination:
		return true
	}
	return false
}

// StatusLog is one append-only audit entry for a status change. Entries are
// never updated or deleted once written.
type StatusLog struct {
	ID          int64      `json:"id"`
	EntityType  EntityType `json:"entity_type"`
	EntityID    int32      `json:"entity_id"`
	Status      string     `json:"status"`
	Note        string     `json:"note,omitempty"`
	ChangedByID *int32     `json:"changed_by_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RevokedToken is one blacklisted refresh token, keyed by JTI. Rows past
// their expiry are garbage and get purged by the cron runner.
type RevokedToken struct {
	ID        int64     `json:"id"`
	JTI       string    `json:"jti"`
	UserID    int32     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
}
