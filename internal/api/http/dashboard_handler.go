package http

import (
	"net/http"

	"shipperd-backend/internal/service"
)

// DashboardHandler serves the read-only aggregate endpoints consumed by the
// dashboard frontend.
type DashboardHandler struct {
	statsSvc service.StatsService
	boxSvc   service.BoxService
	itemSvc  service.ItemService
	userSvc  service.UserService
}

func NewDashboardHandler(statsSvc service.StatsService, boxSvc service.BoxService, itemSvc service.ItemService, userSvc service.UserService) *DashboardHandler {
	return &DashboardHandler{
		statsSvc: statsSvc,
		boxSvc:   boxSvc,
		itemSvc:  itemSvc,
		userSvc:  userSvc,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsSvc.GetDashboardStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) Boxes(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.boxSvc.ListBoxes(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load boxes")
		return
	}
	respondJSON(w, http.StatusOK, boxes)
}

func (h *DashboardHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.ListItems(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load items")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *DashboardHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.userSvc.ListCustomers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load customers")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}
