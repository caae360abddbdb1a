package domain

// Warehouse is a physical facility (UAE, Egypt, etc.).
type Warehouse struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// Locker is a customer's slot at a specific warehouse. Codes are globally
// unique and a customer holds at most one locker per warehouse.
type Locker struct {
	ID          int32  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	CustomerID  int32  `json:"customer_id"`
	WarehouseID int32  `json:"warehouse_id"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}
