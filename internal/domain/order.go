package domain

type OrderStatus string

const (
	OrderStatusPlaced             OrderStatus = "placed"
	OrderStatusShippedToWarehouse OrderStatus = "shipped_to_warehouse"
	OrderStatusArrivedWarehouse   OrderStatus = "arrived_warehouse"
	OrderStatusCancelled          OrderStatus = "cancelled"
	OrderStatusRefunded           OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusShippedToWarehouse, OrderStatusArrivedWarehouse,
		OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// InternationalOrder is an external marketplace order (Amazon, Noon, etc.).
type InternationalOrder struct {
	ID                  int32       `json:"id"`
	CustomerID          int32       `json:"customer_id"`
	Marketplace         string      `json:"marketplace"`
	MarketplaceOrderRef string      `json:"marketplace_order_ref,omitempty"`
	OrderURL            string      `json:"order_url,omitempty"`
	Currency            string      `json:"currency,omitempty"`
	TotalAmountCents    int64       `json:"total_amount_cents"`
	Status              OrderStatus `json:"status"`
	CreatedOn           string      `json:"created_on"`
	UpdatedOn           string      `json:"updated_on"`
}

// ShipmentLabel is the internal barcode issued for one international order.
type ShipmentLabel struct {
	ID                   int32  `json:"id"`
	BarcodeNumber        string `json:"barcode_number"`
	CustomerID           int32  `json:"customer_id"`
	InternationalOrderID int32  `json:"international_order_id"`
	IsPrinted            bool   `json:"is_printed"`
	CreatedOn            string `json:"created_on"`
}

type DomesticOrderStatus string

const (
	DomesticOrderStatusCart           DomesticOrderStatus = "CART"
	DomesticOrderStatusPlaced         DomesticOrderStatus = "PLACED"
	DomesticOrderStatusOutForDelivery DomesticOrderStatus = "OUT_FOR_DELIVERY"
	DomesticOrderStatusDelivered      DomesticOrderStatus = "DELIVERED"
)

func (s DomesticOrderStatus) Valid() bool {
	switch s {
	case DomesticOrderStatusCart, DomesticOrderStatusPlaced,
		DomesticOrderStatusOutForDelivery, DomesticOrderStatusDelivered:
		return true
	}
	return false
}

// DomesticOrder is the final-leg delivery to the customer's address.
type DomesticOrder struct {
	ID              int32               `json:"id"`
	CustomerID      int32               `json:"customer_id"`
	ShippingAddress string              `json:"shipping_address"`
	Status          DomesticOrderStatus `json:"status"`
	CreatedOn       string              `json:"created_on"`
}
