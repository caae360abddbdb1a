package domain

type BoxStatus string

const (
	BoxStatusBuilding        BoxStatus = "building"
	BoxStatusReadyToShip     BoxStatus = "ready_to_ship"
	BoxStatusShipped         BoxStatus = "shipped"
	BoxStatusInTransit       BoxStatus = "in_transit"
	BoxStatusArrived         BoxStatus = "arrived"
	BoxStatusAtCustoms       BoxStatus = "at_customs"
	BoxStatusReleasedCustoms BoxStatus = "released_customs"
	BoxStatusOutForDelivery  BoxStatus = "out_for_delivery"
	BoxStatusDelivered       BoxStatus = "delivered"
	BoxStatusReturned        BoxStatus = "returned"
	BoxStatusRefunded        BoxStatus = "refunded"
)

func (s BoxStatus) Valid() bool {
	switch s {
	case BoxStatusBuilding, BoxStatusReadyToShip, BoxStatusShipped, BoxStatusInTransit,
		BoxStatusArrived, BoxStatusAtCustoms, BoxStatusReleasedCustoms,
		BoxStatusOutForDelivery, BoxStatusDelivered, BoxStatusReturned, BoxStatusRefunded:
		return true
	}
	return false
}

// InternationalBox is a shipping container aggregating customer items.
type InternationalBox struct {
	ID                 int32     `json:"id"`
	BoxNumber          string    `json:"box_number"`
	TrackingNumber     string    `json:"tracking_number,omitempty"`
	Status             BoxStatus `json:"status"`
	OriginCountry      string    `json:"origin_country,omitempty"`
	DestinationCountry string    `json:"destination_country,omitempty"`
	TotalWeightKg      float64   `json:"total_weight_kg"`
	ItemsCount         int32     `json:"items_count"`
	WarehouseID        *int32    `json:"warehouse_id,omitempty"`
	Warehouse          *Warehouse `json:"warehouse,omitempty"` // populated on joined reads
	CreatedOn          string    `json:"created_on"`
	UpdatedOn          string    `json:"updated_on"`
}

// BoxItem links one item into one box. The (box, item) pair is unique.
type BoxItem struct {
	ID        int32  `json:"id"`
	BoxID     int32  `json:"box_id"`
	ItemID    int32  `json:"item_id"`
	AddedOn   string `json:"added_on"`
	AddedByID *int32 `json:"added_by_id,omitempty"`
	Note      string `json:"note,omitempty"`
}
