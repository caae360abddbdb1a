package domain

type ItemStatus string

const (
	ItemStatusAwaitingArrival    ItemStatus = "awaiting_arrival"
	ItemStatusArrivedWarehouse   ItemStatus = "arrived_warehouse"
	ItemStatusValidated          ItemStatus = "validated"
	ItemStatusInBox              ItemStatus = "in_box"
	ItemStatusShipped            ItemStatus = "shipped"
	ItemStatusInTransit          ItemStatus = "in_transit"
	ItemStatusArrivedDestination ItemStatus = "arrived_destination_warehouse"
	ItemStatusAtCustoms          ItemStatus = "at_customs"
	ItemStatusReleasedCustoms    ItemStatus = "released_customs"
	ItemStatusOutForDelivery     ItemStatus = "out_for_delivery"
	ItemStatusDelivered          ItemStatus = "delivered"
	ItemStatusReturned           ItemStatus = "returned"
	ItemStatusRefunded           ItemStatus = "refunded"
	ItemStatusMismatched         ItemStatus = "mismatched"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusAwaitingArrival, ItemStatusArrivedWarehouse, ItemStatusValidated,
		ItemStatusInBox, ItemStatusShipped, ItemStatusInTransit,
		ItemStatusArrivedDestination, ItemStatusAtCustoms, ItemStatusReleasedCustoms,
		ItemStatusOutForDelivery, ItemStatusDelivered, ItemStatusReturned,
		ItemStatusRefunded, ItemStatusMismatched:
		return true
	}
	return false
}

type ItemCondition string

const (
	ItemConditionOK         ItemCondition = "OK"
	ItemConditionDamaged    ItemCondition = "DAMAGED"
	ItemConditionMismatched ItemCondition = "MISMATCHED"
)

func (c ItemCondition) Valid() bool {
	switch c {
	case ItemConditionOK, ItemConditionDamaged, ItemConditionMismatched:
		return true
	}
	return false
}

// Item is a physical package scanned at a warehouse.
type Item struct {
	ID                   int32         `json:"id"`
	TrackingNumber       string        `json:"tracking_number"`
	ScanningDate         *string       `json:"scanning_date,omitempty"`
	WeightKg             float64       `json:"weight_kg"`
	Category             string        `json:"category,omitempty"`
	Quantity             int32         `json:"quantity"`
	CountryOrigin        string        `json:"country_origin,omitempty"`
	Status               ItemStatus    `json:"status"`
	Condition            ItemCondition `json:"condition"`
	CustomerID           int32         `json:"customer_id"`
	CustomerUsername     string        `json:"customer_username,omitempty"` // populated on joined reads
	LockerID             int32         `json:"locker_id"`
	InternationalOrderID *int32        `json:"international_order_id,omitempty"`
	CreatedOn            string        `json:"created_on"`
	UpdatedOn            string        `json:"updated_on"`
}

type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusResolved   RequestStatus = "resolved"
	RequestStatusClosed     RequestStatus = "closed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusResolved, RequestStatusClosed:
		return true
	}
	return false
}

// ItemRequest is a customer service request (mismatch, return, refund).
type ItemRequest struct {
	ID          int32         `json:"id"`
	CustomerID  int32         `json:"customer_id"`
	Subject     string        `json:"subject"`
	Message     string        `json:"message"`
	ChargeCents int64         `json:"charge_cents"`
	ItemID      *int32        `json:"item_id,omitempty"`
	BoxID       *int32        `json:"box_id,omitempty"`
	Status      RequestStatus `json:"status"`
	CreatedOn   string        `json:"created_on"`
}
