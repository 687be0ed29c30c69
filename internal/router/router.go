package router

import (
	"asset-dashboard-api/internal/annotation"
	"asset-dashboard-api/internal/config"
	"asset-dashboard-api/internal/handler"
	"asset-dashboard-api/internal/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter creates a new router and sets up the routes with security middleware.
func NewRouter(h handler.DashboardHandlerInterface, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	securityMW := middleware.NewSecurityMiddleware(&cfg.Security)

	// Apply global middleware in order
	r.Use(securityMW.SecurityHeaders)
	r.Use(securityMW.CORS)
	r.Use(securityMW.TrustedProxy)
	r.Use(securityMW.RateLimit)
	r.Use(securityMW.RequestTimeout)

	// Middleware only runs for matched routes, so preflight requests need one.
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	api := r.PathPrefix("/api/v1").Subrouter()

	// Reference data
	api.HandleFunc("/departments", h.ListDepartmentsHandler).Methods("GET")
	api.HandleFunc("/departments", h.CreateDepartmentHandler).Methods("POST")
	api.HandleFunc("/companies", h.ListCompaniesHandler).Methods("GET")
	api.HandleFunc("/companies", h.CreateCompanyHandler).Methods("POST")
	api.HandleFunc("/cost-centers", h.ListCostCentersHandler).Methods("GET")
	api.HandleFunc("/cost-centers", h.CreateCostCenterHandler).Methods("POST")
	api.HandleFunc("/categories", h.ListCategoriesHandler).Methods("GET")
	api.HandleFunc("/categories", h.CreateCategoryHandler).Methods("POST")
	api.HandleFunc("/suppliers", h.ListSuppliersHandler).Methods("GET")
	api.HandleFunc("/suppliers", h.CreateSupplierHandler).Methods("POST")
	api.HandleFunc("/locations", h.ListLocationsHandler).Methods("GET")
	api.HandleFunc("/locations", h.CreateLocationHandler).Methods("POST")
	api.HandleFunc("/sites", h.ListSitesHandler).Methods("GET")
	api.HandleFunc("/sites", h.CreateSiteHandler).Methods("POST")

	// Depreciation
	api.HandleFunc("/depreciation-books", h.ListDepreciationBooksHandler).Methods("GET")
	api.HandleFunc("/depreciation-books", h.CreateDepreciationBookHandler).Methods("POST")
	api.HandleFunc("/depreciation-info", h.CreateDepreciationInfoHandler).Methods("POST")
	api.HandleFunc("/depreciation-transactions", h.ListDepreciationTransactionsHandler).Methods("GET")
	api.HandleFunc("/asset-depreciation", h.CreateAssetDepreciationHandler).Methods("POST")

	// Assets
	api.HandleFunc("/assets", h.ListAssetsHandler).Methods("GET")
	api.HandleFunc("/assets", h.CreateAssetHandler).Methods("POST")
	api.HandleFunc("/assets/{id:[0-9]+}", h.GetAssetHandler).Methods("GET")
	api.HandleFunc("/assets/{id:[0-9]+}/overview", h.AssetOverviewHandler).Methods("GET")

	// Local records attached to an asset
	records := "/assets/{id:[0-9]+}/{kind:" + annotation.RoutePattern + "}"
	api.HandleFunc(records, h.ListAnnotationsHandler).Methods("GET")
	api.HandleFunc(records, h.CreateAnnotationHandler).Methods("POST")
	api.HandleFunc(records+"/{annotation_id}", h.GetAnnotationHandler).Methods("GET")
	api.HandleFunc(records+"/{annotation_id}", h.DeleteAnnotationHandler).Methods("DELETE")

	// Health check
	r.HandleFunc("/health", h.HealthHandler).Methods("GET")
	api.HandleFunc("/health", h.HealthHandler).Methods("GET")

	return r
}
