package handler

import (
	"net/http"
)

// DashboardHandlerInterface defines the contract for the dashboard HTTP handlers.
type DashboardHandlerInterface interface {
	// Reference data
	ListDepartmentsHandler(w http.ResponseWriter, r *http.Request)
	CreateDepartmentHandler(w http.ResponseWriter, r *http.Request)
	ListCompaniesHandler(w http.ResponseWriter, r *http.Request)
	CreateCompanyHandler(w http.ResponseWriter, r *http.Request)
	ListCostCentersHandler(w http.ResponseWriter, r *http.Request)
	CreateCostCenterHandler(w http.ResponseWriter, r *http.Request)
	ListCategoriesHandler(w http.ResponseWriter, r *http.Request)
	CreateCategoryHandler(w http.ResponseWriter, r *http.Request)
	ListSuppliersHandler(w http.ResponseWriter, r *http.Request)
	CreateSupplierHandler(w http.ResponseWriter, r *http.Request)
	ListLocationsHandler(w http.ResponseWriter, r *http.Request)
	CreateLocationHandler(w http.ResponseWriter, r *http.Request)
	ListSitesHandler(w http.ResponseWriter, r *http.Request)
	CreateSiteHandler(w http.ResponseWriter, r *http.Request)

	// Depreciation
	ListDepreciationBooksHandler(w http.ResponseWriter, r *http.Request)
	CreateDepreciationBookHandler(w http.ResponseWriter, r *http.Request)
	CreateDepreciationInfoHandler(w http.ResponseWriter, r *http.Request)
	ListDepreciationTransactionsHandler(w http.ResponseWriter, r *http.Request)
	CreateAssetDepreciationHandler(w http.ResponseWriter, r *http.Request)

	// Assets
	ListAssetsHandler(w http.ResponseWriter, r *http.Request)
	CreateAssetHandler(w http.ResponseWriter, r *http.Request)
	GetAssetHandler(w http.ResponseWriter, r *http.Request)
	AssetOverviewHandler(w http.ResponseWriter, r *http.Request)

	// Local annotations
	ListAnnotationsHandler(w http.ResponseWriter, r *http.Request)
	CreateAnnotationHandler(w http.ResponseWriter, r *http.Request)
	GetAnnotationHandler(w http.ResponseWriter, r *http.Request)
	DeleteAnnotationHandler(w http.ResponseWriter, r *http.Request)

	// Health and monitoring
	HealthHandler(w http.ResponseWriter, r *http.Request)
}

// Ensure DashboardHandler implements DashboardHandlerInterface at compile time
var _ DashboardHandlerInterface = (*DashboardHandler)(nil)
