package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"shipperd-backend/internal/metrics"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Auth      *AuthMiddleware
	AuthH     *AuthHandler
	Dashboard *DashboardHandler
	Admin     *AdminHandler
}

// NewRouter builds the full route table. Trailing slashes are significant
// and preserved on every path.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Session surface.
	auth := deps.Auth
	r.HandleFunc("/api/auth/login/", deps.AuthH.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout/", auth.Authenticate(deps.AuthH.Logout)).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/refresh/", deps.AuthH.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me/", auth.Authenticate(deps.AuthH.Me)).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/profile/", auth.Authenticate(deps.AuthH.GetProfile)).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/profile/", auth.Authenticate(deps.AuthH.UpdateProfile)).Methods(http.MethodPut)
	r.HandleFunc("/api/auth/settings/", auth.Authenticate(deps.AuthH.GetSettings)).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/settings/", auth.Authenticate(deps.AuthH.UpdateSettings)).Methods(http.MethodPut)

	// Dashboard reads. Served without auth for the embedded frontend.
	r.HandleFunc("/api/stats/", deps.Dashboard.Stats).Methods(http.MethodGet)
	r.HandleFunc("/api/boxes/", deps.Dashboard.Boxes).Methods(http.MethodGet)
	r.HandleFunc("/api/items/", deps.Dashboard.Items).Methods(http.MethodGet)
	r.HandleFunc("/api/customers/", deps.Dashboard.Customers).Methods(http.MethodGet)

	// Management surface.
	admin := deps.Admin
	r.HandleFunc("/api/admin/users/", auth.RequireAdmin(admin.CreateUser)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/users/{id}/", auth.RequireAdmin(admin.GetUser)).Methods(http.MethodGet)

	r.HandleFunc("/api/admin/warehouses/", auth.RequireAdmin(admin.CreateWarehouse)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/warehouses/", auth.RequireAdmin(admin.ListWarehouses)).Methods(http.MethodGet)

	r.HandleFunc("/api/admin/items/", auth.RequireEmployee(admin.ScanItem)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/items/{id}/", auth.RequireEmployee(admin.GetItem)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/items/{id}/status/", auth.RequireEmployee(admin.SetItemStatus)).Methods(http.MethodPut)

	r.HandleFunc("/api/admin/boxes/", auth.RequireEmployee(admin.CreateBox)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/boxes/{id}/", auth.RequireEmployee(admin.GetBox)).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/boxes/{id}/status/", auth.RequireEmployee(admin.SetBoxStatus)).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/boxes/{id}/items/", auth.RequireEmployee(admin.AddItemToBox)).Methods(http.MethodPost)

	r.HandleFunc("/api/admin/orders/", auth.RequireAdmin(admin.PlaceInternationalOrder)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/orders/{id}/label/", auth.RequireAdmin(admin.IssueLabel)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/orders/{id}/status/", auth.RequireAdmin(admin.SetInternationalOrderStatus)).Methods(http.MethodPut)

	r.HandleFunc("/api/admin/domestic-orders/", auth.RequireAdmin(admin.PlaceDomesticOrder)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/domestic-orders/{id}/status/", auth.RequireAdmin(admin.SetDomesticOrderStatus)).Methods(http.MethodPut)

	r.HandleFunc("/api/admin/requests/", auth.RequireAdmin(admin.OpenRequest)).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/requests/{id}/status/", auth.RequireAdmin(admin.SetRequestStatus)).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/customers/{id}/requests/", auth.RequireAdmin(admin.ListCustomerRequests)).Methods(http.MethodGet)

	r.HandleFunc("/api/admin/history/{entity_type}/{id}/", auth.RequireEmployee(admin.History)).Methods(http.MethodGet)

	return r
}
