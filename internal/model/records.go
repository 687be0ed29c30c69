package model

// Records in this file mirror the backend's JSON shapes. They are carried
// through the service untouched; field names follow the backend's casing.

// Department is a department as listed by the backend.
type Department struct {
	ID             int    `json:"id"`
	DepartmentName string `json:"departmentName"`
	DepartmentCode string `json:"departmentCode,omitempty"`
	CompanyID      int    `json:"companyId,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// CreateDepartment is the payload for creating a department.
type CreateDepartment struct {
	DepartmentName string `json:"departmentName"`
	DepartmentCode string `json:"departmentCode,omitempty"`
	CompanyID      int    `json:"companyId,omitempty"`
}

// Company is a company as listed by the backend.
type Company struct {
	ID          int    `json:"id"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// CreateCompany is the backend's echo of a created company.
type CreateCompany struct {
	CompanyName string `json:"companyName"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// CostCenter is a cost center as listed by the backend.
type CostCenter struct {
	ID             int    `json:"id"`
	CostCenterName string `json:"costCenterName"`
	CostCenterCode string `json:"costCenterCode,omitempty"`
	DepartmentID   int    `json:"departmentId,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// CreateCostCenter is the payload for creating a cost center. The company
// create call also sends this shape.
type CreateCostCenter struct {
	CostCenterName string `json:"costCenterName"`
	CostCenterCode string `json:"costCenterCode,omitempty"`
	DepartmentID   int    `json:"departmentId,omitempty"`
}

// Category is an asset category.
type Category struct {
	ID           int     `json:"id"`
	CategoryName string  `json:"categoryName"`
	CategoryCode string  `json:"categoryCode,omitempty"`
	DepRate      float64 `json:"depRate,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// CreateCategory is the payload for creating a category.
type CreateCategory struct {
	CategoryName string  `json:"categoryName"`
	CategoryCode string  `json:"categoryCode,omitempty"`
	DepRate      float64 `json:"depRate,omitempty"`
}

// Asset is a fixed asset as listed by the backend.
type Asset struct {
	ID             int     `json:"id"`
	AssetName      string  `json:"assetName"`
	AssetCode      string  `json:"assetCode"`
	AssetValue     float64 `json:"assetValue"`
	CategoryName   string  `json:"categoryName,omitempty"`
	DepartmentName string  `json:"departmentName,omitempty"`
	LocationName   string  `json:"locationName,omitempty"`
	Status         string  `json:"status,omitempty"`
	PurDate        string  `json:"purDate,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// CreateAsset is the payload for creating an asset.
type CreateAsset struct {
	AssetName    string  `json:"assetName"`
	AssetCode    string  `json:"assetCode"`
	AssetValue   float64 `json:"assetValue"`
	SalvageValue float64 `json:"salvageValue,omitempty"`
	DepRate      float64 `json:"depRate,omitempty"`
	Model        string  `json:"model,omitempty"`
	SlNo         string  `json:"slNo,omitempty"`
	CategoryID   int     `json:"categoryId,omitempty"`
	DepartmentID int     `json:"departmentId,omitempty"`
	CostCenterID int     `json:"costCenterId,omitempty"`
	LocationID   int     `json:"locationId,omitempty"`
	SiteID       int     `json:"siteId,omitempty"`
	SupplierID   int     `json:"supplierId,omitempty"`
	PurDate      string  `json:"purDate"`
	StartDate    string  `json:"startDate"`
}

// AssetDetails is the detail view of one asset. The backend returns it
// wrapped in an array.
type AssetDetails struct {
	AssetName      string  `json:"assetName"`
	AssetCode      string  `json:"assetCode"`
	AssetValue     float64 `json:"assetValue"`
	CurrentValue   float64 `json:"currentValue,omitempty"`
	SalvageValue   float64 `json:"salvageValue,omitempty"`
	DepRate        float64 `json:"depRate,omitempty"`
	LocationName   string  `json:"locationName,omitempty"`
	DepartmentName string  `json:"departmentName,omitempty"`
	CategoryName   string  `json:"categoryName,omitempty"`
	Model          string  `json:"model,omitempty"`
	User           string  `json:"user,omitempty"`
	Status         string  `json:"status,omitempty"`
	SlNo           string  `json:"slNo,omitempty"`
	Manufacturer   string  `json:"manufacure,omitempty"` // backend spelling
	CreatedBy      string  `json:"createdBy,omitempty"`
	PurDate        string  `json:"purDate"`
	StartDate      string  `json:"startDate"`
	CreatedAt      string  `json:"createdAt"`
}

// Supplier is a supplier as listed by the backend.
type Supplier struct {
	ID           int    `json:"id"`
	SupplierName string `json:"supplierName"`
	ContactName  string `json:"contactName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CreateSupplier is the payload for creating a supplier.
type CreateSupplier struct {
	SupplierName string `json:"supplierName"`
	ContactName  string `json:"contactName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Location is a physical location.
type Location struct {
	ID           int    `json:"id"`
	LocationName string `json:"locationName"`
	LocationCode string `json:"locationCode,omitempty"`
	Address      string `json:"address,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CreateLocation is the payload for creating a location.
type CreateLocation struct {
	LocationName string `json:"locationName"`
	LocationCode string `json:"locationCode,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Site is a site (the backend calls it a section).
type Site struct {
	ID         int    `json:"id"`
	SiteName   string `json:"siteName"`
	SiteCode   string `json:"siteCode,omitempty"`
	LocationID int    `json:"locationId,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// CreateSite is the payload for creating a site.
type CreateSite struct {
	SiteName   string `json:"siteName"`
	SiteCode   string `json:"siteCode,omitempty"`
	LocationID int    `json:"locationId,omitempty"`
}

// DepreciationBook is a depreciation book.
type DepreciationBook struct {
	ID          int    `json:"id"`
	BookName    string `json:"bookName"`
	BookCode    string `json:"bookCode,omitempty"`
	Method      string `json:"method,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// CreateDepreciationBook is the payload for creating a depreciation book.
type CreateDepreciationBook struct {
	BookName    string `json:"bookName"`
	BookCode    string `json:"bookCode,omitempty"`
	Method      string `json:"method,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateDepreciationInfo is the payload linking an asset to a book.
type CreateDepreciationInfo struct {
	AssetID      int     `json:"assetId"`
	BookID       int     `json:"bookId"`
	DepRate      float64 `json:"depRate"`
	UsefulLife   int     `json:"usefulLife,omitempty"`
	SalvageValue float64 `json:"salvageValue,omitempty"`
	StartDate    string  `json:"startDate"`
}

// DepreciationTransaction is one period row of a depreciation schedule.
type DepreciationTransaction struct {
	ID                      int     `json:"id"`
	AssetID                 int     `json:"assetId,omitempty"`
	Period                  string  `json:"period"`
	DepreciationAmount      float64 `json:"depreciationAmount"`
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"`
	BookValue               float64 `json:"bookValue"`
}

// CreateAssetDepreciation asks the backend to calculate depreciation for an
// asset up to a date.
type CreateAssetDepreciation struct {
	AssetID  int    `json:"assetId"`
	BookID   int    `json:"bookId,omitempty"`
	FromDate string `json:"fromDate,omitempty"`
	ToDate   string `json:"toDate"`
}
