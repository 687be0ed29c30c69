package backend

import (
	"asset-dashboard-api/internal/apiclient"
	"asset-dashboard-api/internal/model"
	"context"
)

// API is the set of typed backend calls. Handlers depend on it so tests can
// substitute a fake.
type API interface {
	GetAllDepartments(ctx context.Context, token string) apiclient.Result[[]model.Department]
	CreateDepartment(ctx context.Context, data model.CreateDepartment, token string) apiclient.Result[model.CreateDepartment]

	GetAllCompany(ctx context.Context, token string) apiclient.Result[[]model.Company]
	CreateCompany(ctx context.Context, data model.CreateCostCenter, token string) apiclient.Result[model.CreateCompany]
	GetAllCompanies(ctx context.Context, token string) apiclient.Result[[]model.Company]

	CreateCostCenter(ctx context.Context, data model.CreateCostCenter, token string) apiclient.Result[model.CreateCostCenter]
	GetAllCostCenters(ctx context.Context, token string) apiclient.Result[[]model.CostCenter]

	CreateCategory(ctx context.Context, data model.CreateCategory, token string) apiclient.Result[model.CreateCategory]
	GetAllCategories(ctx context.Context, token string) apiclient.Result[[]model.Category]

	CreateAsset(ctx context.Context, data model.CreateAsset, token string) apiclient.Result[model.CreateAsset]
	GetAllAssets(ctx context.Context, token string) apiclient.Result[[]model.Asset]
	GetAllAssetDetails(ctx context.Context, token string, id int) apiclient.Result[[]model.AssetDetails]

	CreateSupplier(ctx context.Context, data model.CreateSupplier, token string) apiclient.Result[model.CreateSupplier]
	GetAllSuppliers(ctx context.Context, token string) apiclient.Result[[]model.Supplier]

	CreateLocation(ctx context.Context, data model.CreateLocation, token string) apiclient.Result[model.CreateLocation]
	GetAllLocations(ctx context.Context, token string) apiclient.Result[[]model.Location]

	CreateSite(ctx context.Context, data model.CreateSite, token string) apiclient.Result[model.CreateSite]
	GetAllSites(ctx context.Context, token string) apiclient.Result[[]model.Site]

	CreateDepreciationBook(ctx context.Context, data model.CreateDepreciationBook, token string) apiclient.Result[model.CreateDepreciationBook]
	GetAllDepreciationBook(ctx context.Context, token string) apiclient.Result[[]model.DepreciationBook]
	CreateDepreciationInfo(ctx context.Context, data model.CreateDepreciationInfo, token string) apiclient.Result[model.CreateDepreciationInfo]
	GetAllDepreciationTransactions(ctx context.Context, token string) apiclient.Result[[]model.DepreciationTransaction]
	CreateAssetDepreciation(ctx context.Context, data model.CreateAssetDepreciation, token string) apiclient.Result[model.CreateAssetDepreciation]
}

// Ensure Facade implements API at compile time
var _ API = (*Facade)(nil)
