package backend

import (
	"net/http"
)

// Header names used for the caller's token.
const (
	HeaderAuthorization = "Authorization"
	// HeaderAuthentication is what the backend's company listing has always
	// been sent. Unverified whether the backend requires it.
	HeaderAuthentication = "Authentication"
)

// Operation describes one backend call. Path may contain an {id} placeholder.
type Operation struct {
	Name       string
	Method     string
	Path       string
	AuthHeader string
}

// authHeader returns the header that carries the token for this operation.
func (op Operation) authHeader() string {
	if op.AuthHeader == "" {
		return HeaderAuthorization
	}
	return op.AuthHeader
}

// Backend operations, one per façade method.
var (
	OpGetAllDepartments = Operation{Name: "GetAllDepartments", Method: http.MethodGet, Path: "api/department/getall"}
	OpCreateDepartment  = Operation{Name: "CreateDepartment", Method: http.MethodPost, Path: "api/department/create"}

	OpGetAllCompany   = Operation{Name: "GetAllCompany", Method: http.MethodGet, Path: "api/company/get-all-companies", AuthHeader: HeaderAuthentication}
	OpCreateCompany   = Operation{Name: "CreateCompany", Method: http.MethodPost, Path: "api/company/create-company"}
	OpGetAllCompanies = Operation{Name: "GetAllCompanies", Method: http.MethodGet, Path: "api/company/get-all-companies"}

	OpCreateCostCenter  = Operation{Name: "CreateCostCenter", Method: http.MethodPost, Path: "api/costCenter/create"}
	OpGetAllCostCenters = Operation{Name: "GetAllCostCenters", Method: http.MethodGet, Path: "api/costCenter/getall"}

	OpCreateCategory   = Operation{Name: "CreateCategory", Method: http.MethodPost, Path: "api/category/create"}
	OpGetAllCategories = Operation{Name: "GetAllCategories", Method: http.MethodGet, Path: "api/category/getall"}

	OpCreateAsset        = Operation{Name: "CreateAsset", Method: http.MethodPost, Path: "api/asset/create"}
	OpGetAllAssets       = Operation{Name: "GetAllAssets", Method: http.MethodGet, Path: "api/asset/getall"}
	OpGetAllAssetDetails = Operation{Name: "GetAllAssetDetails", Method: http.MethodGet, Path: "api/asset/getDetails/{id}"}

	OpCreateSupplier  = Operation{Name: "CreateSupplier", Method: http.MethodPost, Path: "api/supplier/create"}
	OpGetAllSuppliers = Operation{Name: "GetAllSuppliers", Method: http.MethodGet, Path: "api/supplier/getall"}

	OpCreateLocation  = Operation{Name: "CreateLocation", Method: http.MethodPost, Path: "api/location/create"}
	OpGetAllLocations = Operation{Name: "GetAllLocations", Method: http.MethodGet, Path: "api/location/getall"}

	OpCreateSite  = Operation{Name: "CreateSite", Method: http.MethodPost, Path: "api/section/create"}
	OpGetAllSites = Operation{Name: "GetAllSites", Method: http.MethodGet, Path: "api/section/getall"}

	OpCreateDepreciationBook = Operation{Name: "CreateDepreciationBook", Method: http.MethodPost, Path: "api/depBook/create"}
	OpGetAllDepreciationBook = Operation{Name: "GetAllDepreciationBook", Method: http.MethodGet, Path: "api/depBook/getall"}
	OpCreateDepreciationInfo = Operation{Name: "CreateDepreciationInfo", Method: http.MethodPost, Path: "api/depInfo/create"}
	// Same path as the book listing; the backend has no separate
	// transactions endpoint yet.
	OpGetAllDepreciationTransactions = Operation{Name: "GetAllDepreciationTransactions", Method: http.MethodGet, Path: "api/depBook/getall"}
	OpCreateAssetDepreciation        = Operation{Name: "CreateAssetDepreciation", Method: http.MethodPost, Path: "api/depCalculation/calculate"}
)

// Operations lists every backend call the façade can make.
var Operations = []Operation{
	OpGetAllDepartments,
	OpCreateDepartment,
	OpGetAllCompany,
	OpCreateCompany,
	OpGetAllCompanies,
	OpCreateCostCenter,
	OpGetAllCostCenters,
	OpCreateCategory,
	OpGetAllCategories,
	OpCreateAsset,
	OpGetAllAssets,
	OpGetAllAssetDetails,
	OpCreateSupplier,
	OpGetAllSuppliers,
	OpCreateLocation,
	OpGetAllLocations,
	OpCreateSite,
	OpGetAllSites,
	OpCreateDepreciationBook,
	OpGetAllDepreciationBook,
	OpCreateDepreciationInfo,
	OpGetAllDepreciationTransactions,
	OpCreateAssetDepreciation,
}
