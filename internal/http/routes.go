// Package httpx is the local JSON surface of the gateway: session
// endpoints backed by the auth manager, and thin proxy routes for the
// upstream catalog behind the session gate.
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/electromove/ev-admin-api/internal/adapters/evapi"
)

// RouterServices holds the dependencies of the HTTP router.
type RouterServices struct {
	Auth    AuthManagerInterface
	Catalog *evapi.Client
	Logger  *slog.Logger
}

// NewRouter creates and configures the HTTP handler tree.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Auth: services.Auth, Logger: logger}
	registerAuthRoutes(mux, authHandlers)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Catalog != nil {
		gated := http.NewServeMux()
		registerCatalogRoutes(gated, services.Catalog)
		mux.Handle("/api/", RequireSession(services.Auth)(gated))
	}

	return Logging(logger)(Recover(logger)(mux))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("POST /api/auth/refresh", h.Refresh)
	mux.HandleFunc("GET /api/auth/me", h.Me)
}

func registerCatalogRoutes(mux *http.ServeMux, client *evapi.Client) {
	brands := &BrandHandlers{Client: client}
	mux.HandleFunc("GET /api/brands", brands.List)
	mux.HandleFunc("POST /api/brands", brands.Create)
	mux.HandleFunc("GET /api/brands/{id}", brands.Get)
	mux.HandleFunc("PUT /api/brands/{id}", brands.Update)
	mux.HandleFunc("DELETE /api/brands/{id}", brands.Delete)
	mux.HandleFunc("GET /api/brands/{id}/addresses", brands.Addresses)
	mux.HandleFunc("POST /api/brands/{id}/addresses", brands.AddAddress)

	vehicles := &VehicleHandlers{Client: client}
	mux.HandleFunc("GET /api/vehicles", vehicles.List)
	mux.HandleFunc("POST /api/vehicles", vehicles.Create)
	mux.HandleFunc("GET /api/vehicles/favorites", vehicles.Favorites)
	mux.HandleFunc("GET /api/vehicles/versions", vehicles.Versions)
	mux.HandleFunc("GET /api/vehicles/versions/{id}", vehicles.Version)
	mux.HandleFunc("GET /api/vehicles/{id}", vehicles.Get)
	mux.HandleFunc("PUT /api/vehicles/{id}", vehicles.Update)
	mux.HandleFunc("DELETE /api/vehicles/{id}", vehicles.Delete)

	inventory := &InventoryHandlers{Client: client}
	mux.HandleFunc("GET /api/inventory", inventory.List)
	mux.HandleFunc("POST /api/inventory", inventory.Create)
	// VIN lookup takes the vin as a query parameter: a {vin} path segment
	// under /api/inventory would be ambiguous with the {id} subtree.
	mux.HandleFunc("GET /api/inventory/by-vin", inventory.GetByVIN)
	mux.HandleFunc("GET /api/inventory/{id}", inventory.Get)
	mux.HandleFunc("PUT /api/inventory/{id}", inventory.Update)
	mux.HandleFunc("DELETE /api/inventory/{id}", inventory.Delete)
	mux.HandleFunc("GET /api/inventory/{id}/movements", inventory.Movements)
	mux.HandleFunc("POST /api/inventory/{id}/movements", inventory.AddMovement)
	mux.HandleFunc("PUT /api/inventory/{id}/status", inventory.ChangeStatus)
	mux.HandleFunc("PUT /api/inventory/{id}/location", inventory.ChangeLocation)
	mux.HandleFunc("PUT /api/inventory/{id}/mileage", inventory.UpdateMileage)

	colors := &ColorHandlers{Client: client}
	mux.HandleFunc("GET /api/colors", colors.List)
	mux.HandleFunc("POST /api/colors", colors.Create)
	mux.HandleFunc("PUT /api/colors/{id}", colors.Update)
	mux.HandleFunc("DELETE /api/colors/{id}", colors.Delete)
	mux.HandleFunc("POST /api/colors/{id}/associate", colors.Associate)

	equipment := &EquipmentHandlers{Client: client}
	mux.HandleFunc("GET /api/equipment", equipment.List)
	mux.HandleFunc("POST /api/equipment", equipment.Create)
	mux.HandleFunc("GET /api/equipment/{id}", equipment.Get)
	mux.HandleFunc("PUT /api/equipment/{id}", equipment.Update)
	mux.HandleFunc("DELETE /api/equipment/{id}", equipment.Delete)

	comments := &CommentHandlers{Client: client}
	mux.HandleFunc("GET /api/comments", comments.List)
	mux.HandleFunc("POST /api/comments", comments.Create)
	mux.HandleFunc("PUT /api/comments/{id}", comments.Update)
	mux.HandleFunc("DELETE /api/comments/{id}", comments.Delete)

	users := &UserHandlers{Client: client}
	mux.HandleFunc("GET /api/users", users.List)
	mux.HandleFunc("POST /api/users", users.Register)
	mux.HandleFunc("GET /api/users/{id}", users.Get)
	mux.HandleFunc("PUT /api/users/{id}", users.Update)
	mux.HandleFunc("DELETE /api/users/{id}", users.Delete)
}
