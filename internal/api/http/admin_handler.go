package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/service"
)

// AdminHandler serves the staff-facing management surface: accounts,
// warehouses, items, boxes, orders, requests and status history.
type AdminHandler struct {
	userSvc      service.UserService
	warehouseSvc service.WarehouseService
	itemSvc      service.ItemService
	boxSvc       service.BoxService
	orderSvc     service.OrderService
	requestSvc   service.RequestService
	historySvc   service.HistoryService
}

func NewAdminHandler(
	userSvc service.UserService,
	warehouseSvc service.WarehouseService,
	itemSvc service.ItemService,
	boxSvc service.BoxService,
	orderSvc service.OrderService,
	requestSvc service.RequestService,
	historySvc service.HistoryService,
) *AdminHandler {
	return &AdminHandler{
		userSvc:      userSvc,
		warehouseSvc: warehouseSvc,
		itemSvc:      itemSvc,
		boxSvc:       boxSvc,
		orderSvc:     orderSvc,
		requestSvc:   requestSvc,
		historySvc:   historySvc,
	}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// ---- users ----

type createUserRequest struct {
	Username           string      `json:"username"`
	Email              string      `json:"email"`
	FirstName          string      `json:"first_name"`
	LastName           string      `json:"last_name"`
	Password           string      `json:"password"`
	Role               domain.Role `json:"role"`
	Phone              string      `json:"phone"`
	Country            string      `json:"country"`
	City               string      `json:"city"`
	Address            string      `json:"address"`
	EmailNotifications *bool       `json:"email_notifications"`
	SMSNotifications   bool        `json:"sms_notifications"`
	Timezone           string      `json:"timezone"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	emailNotifications := true
	if req.EmailNotifications != nil {
		emailNotifications = *req.EmailNotifications
	}

	user, lockers, err := h.userSvc.CreateUser(r.Context(), service.CreateUserParams{
		Username:           req.Username,
		Email:              req.Email,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Password:           req.Password,
		Role:               req.Role,
		Phone:              req.Phone,
		Country:            req.Country,
		City:               req.City,
		Address:            req.Address,
		EmailNotifications: emailNotifications,
		SMSNotifications:   req.SMSNotifications,
		Timezone:           req.Timezone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidRole):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "user creation failed")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"user":    user,
		"lockers": lockers,
	})
}

func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userSvc.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// ---- warehouses ----

type warehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (h *AdminHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req warehouseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	wh := &domain.Warehouse{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	}
	if err := h.warehouseSvc.CreateWarehouse(r.Context(), wh); err != nil {
		switch {
		case errors.Is(err, service.ErrWarehouseNameRequired):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWarehouseExists):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "warehouse creation failed")
		}
		return
	}
	respondJSON(w, http.StatusCreated, wh)
}

func (h *AdminHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.warehouseSvc.ListWarehouses(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load warehouses")
		return
	}
	respondJSON(w, http.StatusOK, warehouses)
}

// ---- items ----

type scanItemRequest struct {
	TrackingNumber       string  `json:"tracking_number"`
	WeightKg             float64 `json:"weight_kg"`
	Category             string  `json:"category"`
	Quantity             int32   `json:"quantity"`
	CountryOrigin        string  `json:"country_origin"`
	Condition            string  `json:"condition"`
	CustomerID           int32   `json:"customer_id"`
	LockerID             int32   `json:"locker_id"`
	InternationalOrderID *int32  `json:"international_order_id"`
}

func (h *AdminHandler) ScanItem(w http.ResponseWriter, r *http.Request) {
	var req scanItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item := &domain.Item{
		TrackingNumber:       req.TrackingNumber,
		WeightKg:             req.WeightKg,
		Category:             req.Category,
		Quantity:             req.Quantity,
		CountryOrigin:        req.CountryOrigin,
		Condition:            domain.ItemCondition(req.Condition),
		CustomerID:           req.CustomerID,
		LockerID:             req.LockerID,
		InternationalOrderID: req.InternationalOrderID,
	}
	if err := h.itemSvc.ScanIn(r.Context(), item); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *AdminHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.itemSvc.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (h *AdminHandler) SetItemStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req statusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.itemSvc.SetStatus(r.Context(), claims.UserID, id, domain.ItemStatus(req.Status), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrItemNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "status update failed")
		}
		return
	}
	respondDetail(w, http.StatusOK, "Status updated.")
}

// ---- boxes ----

type createBoxRequest struct {
	BoxNumber          string `json:"box_number"`
	TrackingNumber     string `json:"tracking_number"`
	OriginCountry      string `json:"origin_country"`
	DestinationCountry string `json:"destination_country"`
	WarehouseID        *int32 `json:"warehouse_id"`
}

func (h *AdminHandler) CreateBox(w http.ResponseWriter, r *http.Request) {
	var req createBoxRequest
	if !decodeBody(w, r, &req) {
		return
	}

	box := &domain.InternationalBox{
		BoxNumber:          req.BoxNumber,
		TrackingNumber:     req.TrackingNumber,
		OriginCountry:      req.OriginCountry,
		DestinationCountry: req.DestinationCountry,
		WarehouseID:        req.WarehouseID,
	}
	if err := h.boxSvc.CreateBox(r.Context(), box); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, box)
}

func (h *AdminHandler) GetBox(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid box id")
		return
	}

	box, err := h.boxSvc.GetBox(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBoxNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load box")
		return
	}
	respondJSON(w, http.StatusOK, box)
}

func (h *AdminHandler) SetBoxStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid box id")
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req statusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.boxSvc.SetStatus(r.Context(), claims.UserID, id, domain.BoxStatus(req.Status), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBoxNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "status update failed")
		}
		return
	}
	respondDetail(w, http.StatusOK, "Status updated.")
}

type addItemRequest struct {
	ItemID int32  `json:"item_id"`
	Note   string `json:"note"`
}

func (h *AdminHandler) AddItemToBox(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid box id")
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.boxSvc.AddItem(r.Context(), claims.UserID, id, req.ItemID, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBoxNotFound), errors.Is(err, service.ErrItemNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to add item to box")
		}
		return
	}
	respondDetail(w, http.StatusOK, "Item added to box.")
}

// ---- orders ----

type internationalOrderRequest struct {
	CustomerID          int32  `json:"customer_id"`
	Marketplace         string `json:"marketplace"`
	MarketplaceOrderRef string `json:"marketplace_order_ref"`
	OrderURL            string `json:"order_url"`
	Currency            string `json:"currency"`
	TotalAmountCents    int64  `json:"total_amount_cents"`
}

func (h *AdminHandler) PlaceInternationalOrder(w http.ResponseWriter, r *http.Request) {
	var req internationalOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order := &domain.InternationalOrder{
		CustomerID:          req.CustomerID,
		Marketplace:         req.Marketplace,
		MarketplaceOrderRef: req.MarketplaceOrderRef,
		OrderURL:            req.OrderURL,
		Currency:            req.Currency,
		TotalAmountCents:    req.TotalAmountCents,
	}
	if err := h.orderSvc.PlaceInternationalOrder(r.Context(), order); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *AdminHandler) IssueLabel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	label, err := h.orderSvc.IssueLabel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLabelExists):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "label issuance failed")
		}
		return
	}
	respondJSON(w, http.StatusCreated, label)
}

func (h *AdminHandler) SetInternationalOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req statusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.orderSvc.SetInternationalStatus(r.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "status update failed")
		}
		return
	}
	respondDetail(w, http.StatusOK, "Status updated.")
}

type domesticOrderRequest struct {
	CustomerID      int32  `json:"customer_id"`
	ShippingAddress string `json:"shipping_address"`
}

func (h *AdminHandler) PlaceDomesticOrder(w http.ResponseWriter, r *http.Request) {
	var req domesticOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order := &domain.DomesticOrder{
		CustomerID:      req.CustomerID,
		ShippingAddress: req.ShippingAddress,
	}
	if err := h.orderSvc.PlaceDomesticOrder(r.Context(), order); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *AdminHandler) SetDomesticOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req statusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.orderSvc.SetDomesticStatus(r.Context(), id, domain.DomesticOrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "status update failed")
		}
		return
	}
	respondDetail(w, http.StatusOK, "Status updated.")
}

// ---- item requests ----

type openRequestRequest struct {
	CustomerID  int32  `json:"customer_id"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	ChargeCents int64  `json:"charge_cents"`
	ItemID      *int32 `json:"item_id"`
	BoxID       *int32 `json:"box_id"`
}

func (h *AdminHandler) OpenRequest(w http.ResponseWriter, r *http.Request) {
	var req openRequestRequest
	if !decodeBody(w, r, &req) {
		return
	}

	itemReq := &domain.ItemRequest{
		CustomerID:  req.CustomerID,
		Subject:     req.Subject,
		Message:     req.Message,
		ChargeCents: req.ChargeCents,
		ItemID:      req.ItemID,
		BoxID:       req.BoxID,
	}
	if err := h.requestSvc.OpenRequest(r.Context(), itemReq); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, itemReq)
}

func (h *AdminHandler) SetRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req statusUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.requestSvc.SetStatus(r.Context(), id, domain.RequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRequestNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "status update failed")
		}
		return
	}
	respondDetail(w, http.StatusOK, "Status updated.")
}

func (h *AdminHandler) ListCustomerRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	requests, err := h.requestSvc.ListByCustomer(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load requests")
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// ---- status history ----

func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entityType := domain.EntityType(vars["entity_type"])
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid entity id")
		return
	}

	entries, err := h.historySvc.Timeline(r.Context(), entityType, id)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntityType) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
