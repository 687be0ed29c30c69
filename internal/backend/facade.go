package backend

import (
	"asset-dashboard-api/internal/apiclient"
	"asset-dashboard-api/internal/model"
	"context"
	"strconv"
	"strings"
)

// Facade maps each backend operation to a typed call. It does no validation,
// retry or caching; callers must only invoke it with a token.
type Facade struct {
	client *apiclient.Client
}

// NewFacade creates a Facade that sends through client.
func NewFacade(client *apiclient.Client) *Facade {
	return &Facade{client: client}
}

// invoke builds the request for op and hands it to the contract layer. The
// response is returned unchanged. id is substituted into {id} when present.
func invoke[T any](ctx context.Context, f *Facade, op Operation, token string, body any, id int) apiclient.Result[T] {
	url := op.Path
	if strings.Contains(url, "{id}") {
		url = strings.ReplaceAll(url, "{id}", strconv.Itoa(id))
	}

	return apiclient.Fetch[T](ctx, f.client, apiclient.Request{
		URL:    url,
		Method: op.Method,
		Body:   body,
		Headers: map[string]string{
			op.authHeader(): token,
			"Content-Type":  "application/json",
		},
	})
}

// Departments

func (f *Facade) GetAllDepartments(ctx context.Context, token string) apiclient.Result[[]model.Department] {
	return invoke[[]model.Department](ctx, f, OpGetAllDepartments, token, nil, 0)
}

func (f *Facade) CreateDepartment(ctx context.Context, data model.CreateDepartment, token string) apiclient.Result[model.CreateDepartment] {
	return invoke[model.CreateDepartment](ctx, f, OpCreateDepartment, token, data, 0)
}

// Companies

// GetAllCompany lists companies sending the token as Authentication.
// GetAllCompanies is the same call with Authorization.
func (f *Facade) GetAllCompany(ctx context.Context, token string) apiclient.Result[[]model.Company] {
	return invoke[[]model.Company](ctx, f, OpGetAllCompany, token, nil, 0)
}

// CreateCompany posts the cost-center shaped payload the backend has always
// received for this call.
func (f *Facade) CreateCompany(ctx context.Context, data model.CreateCostCenter, token string) apiclient.Result[model.CreateCompany] {
	return invoke[model.CreateCompany](ctx, f, OpCreateCompany, token, data, 0)
}

func (f *Facade) GetAllCompanies(ctx context.Context, token string) apiclient.Result[[]model.Company] {
	return invoke[[]model.Company](ctx, f, OpGetAllCompanies, token, nil, 0)
}

// Cost centers

func (f *Facade) CreateCostCenter(ctx context.Context, data model.CreateCostCenter, token string) apiclient.Result[model.CreateCostCenter] {
	return invoke[model.CreateCostCenter](ctx, f, OpCreateCostCenter, token, data, 0)
}

func (f *Facade) GetAllCostCenters(ctx context.Context, token string) apiclient.Result[[]model.CostCenter] {
	return invoke[[]model.CostCenter](ctx, f, OpGetAllCostCenters, token, nil, 0)
}

// Categories

func (f *Facade) CreateCategory(ctx context.Context, data model.CreateCategory, token string) apiclient.Result[model.CreateCategory] {
	return invoke[model.CreateCategory](ctx, f, OpCreateCategory, token, data, 0)
}

func (f *Facade) GetAllCategories(ctx context.Context, token string) apiclient.Result[[]model.Category] {
	return invoke[[]model.Category](ctx, f, OpGetAllCategories, token, nil, 0)
}

// Assets

func (f *Facade) CreateAsset(ctx context.Context, data model.CreateAsset, token string) apiclient.Result[model.CreateAsset] {
	return invoke[model.CreateAsset](ctx, f, OpCreateAsset, token, data, 0)
}

func (f *Facade) GetAllAssets(ctx context.Context, token string) apiclient.Result[[]model.Asset] {
	return invoke[[]model.Asset](ctx, f, OpGetAllAssets, token, nil, 0)
}

// GetAllAssetDetails fetches the details of one asset. The backend wraps the
// single record in an array.
func (f *Facade) GetAllAssetDetails(ctx context.Context, token string, id int) apiclient.Result[[]model.AssetDetails] {
	return invoke[[]model.AssetDetails](ctx, f, OpGetAllAssetDetails, token, nil, id)
}

// Suppliers

func (f *Facade) CreateSupplier(ctx context.Context, data model.CreateSupplier, token string) apiclient.Result[model.CreateSupplier] {
	return invoke[model.CreateSupplier](ctx, f, OpCreateSupplier, token, data, 0)
}

func (f *Facade) GetAllSuppliers(ctx context.Context, token string) apiclient.Result[[]model.Supplier] {
	return invoke[[]model.Supplier](ctx, f, OpGetAllSuppliers, token, nil, 0)
}

// Locations and sites

func (f *Facade) CreateLocation(ctx context.Context, data model.CreateLocation, token string) apiclient.Result[model.CreateLocation] {
	return invoke[model.CreateLocation](ctx, f, OpCreateLocation, token, data, 0)
}

func (f *Facade) GetAllLocations(ctx context.Context, token string) apiclient.Result[[]model.Location] {
	return invoke[[]model.Location](ctx, f, OpGetAllLocations, token, nil, 0)
}

func (f *Facade) CreateSite(ctx context.Context, data model.CreateSite, token string) apiclient.Result[model.CreateSite] {
	return invoke[model.CreateSite](ctx, f, OpCreateSite, token, data, 0)
}

func (f *Facade) GetAllSites(ctx context.Context, token string) apiclient.Result[[]model.Site] {
	return invoke[[]model.Site](ctx, f, OpGetAllSites, token, nil, 0)
}

// Depreciation

func (f *Facade) CreateDepreciationBook(ctx context.Context, data model.CreateDepreciationBook, token string) apiclient.Result[model.CreateDepreciationBook] {
	return invoke[model.CreateDepreciationBook](ctx, f, OpCreateDepreciationBook, token, data, 0)
}

func (f *Facade) GetAllDepreciationBook(ctx context.Context, token string) apiclient.Result[[]model.DepreciationBook] {
	return invoke[[]model.DepreciationBook](ctx, f, OpGetAllDepreciationBook, token, nil, 0)
}

func (f *Facade) CreateDepreciationInfo(ctx context.Context, data model.CreateDepreciationInfo, token string) apiclient.Result[model.CreateDepreciationInfo] {
	return invoke[model.CreateDepreciationInfo](ctx, f, OpCreateDepreciationInfo, token, data, 0)
}

func (f *Facade) GetAllDepreciationTransactions(ctx context.Context, token string) apiclient.Result[[]model.DepreciationTransaction] {
	return invoke[[]model.DepreciationTransaction](ctx, f, OpGetAllDepreciationTransactions, token, nil, 0)
}

func (f *Facade) CreateAssetDepreciation(ctx context.Context, data model.CreateAssetDepreciation, token string) apiclient.Result[model.CreateAssetDepreciation] {
	return invoke[model.CreateAssetDepreciation](ctx, f, OpCreateAssetDepreciation, token, data, 0)
}
