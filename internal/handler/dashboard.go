package handler

import (
	"asset-dashboard-api/internal/annotation"
	"asset-dashboard-api/internal/apiclient"
	"asset-dashboard-api/internal/backend"
	"asset-dashboard-api/internal/model"
	"asset-dashboard-api/internal/notification"
	"asset-dashboard-api/pkg/errors"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Constants for timeouts and limits
const (
	DefaultTimeout     = 15 * time.Second
	OverviewTimeout    = 20 * time.Second
	HealthCheckTimeout = 2 * time.Second
	MaxBodyBytes       = 1 << 20
)

// AnnotationService is the local record store used by the asset pages
type AnnotationService interface {
	AddAnnotation(ctx context.Context, assetID int, kind annotation.Kind, raw json.RawMessage) (*annotation.Annotation, error)
	ListAnnotations(ctx context.Context, assetID int, kind annotation.Kind) ([]annotation.Annotation, error)
	AssetAnnotations(ctx context.Context, assetID int) (map[annotation.Kind][]annotation.Annotation, error)
	GetAnnotation(ctx context.Context, assetID int, kind annotation.Kind, id uuid.UUID) (*annotation.Annotation, error)
	DeleteAnnotation(ctx context.Context, assetID int, kind annotation.Kind, id uuid.UUID) error
}

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Dependencies wires a DashboardHandler. DB and Notifier are optional and
// only feed the health check.
type Dependencies struct {
	Backend     backend.API
	Annotations AnnotationService
	DB          Pinger
	Notifier    notification.Notifier
	Logger      zerolog.Logger

	// LegacyCompanyAuth lists companies through the call that sends the
	// token in an Authentication header.
	LegacyCompanyAuth bool
}

// DashboardHandler serves the dashboard API. Backend calls forward the
// caller's token; requests without one are rejected before any call is made.
type DashboardHandler struct {
	Backend           backend.API
	Annotations       AnnotationService
	DB                Pinger
	Notifier          notification.Notifier
	Logger            zerolog.Logger
	LegacyCompanyAuth bool

	ErrorHandler   *ErrorHandler
	ResponseHelper *ResponseHelper
}

// NewDashboardHandler creates a new DashboardHandler with dependencies and helpers
func NewDashboardHandler(deps Dependencies) *DashboardHandler {
	logger := deps.Logger.With().Str("component", "handler").Logger()
	return &DashboardHandler{
		Backend:           deps.Backend,
		Annotations:       deps.Annotations,
		DB:                deps.DB,
		Notifier:          deps.Notifier,
		Logger:            logger,
		LegacyCompanyAuth: deps.LegacyCompanyAuth,
		ErrorHandler:      NewErrorHandler(logger),
		ResponseHelper:    NewResponseHelper(),
	}
}

// AssetOverview is everything the asset details page shows, loaded at once
type AssetOverview struct {
	Details                  model.AssetDetails                          `json:"details"`
	DepreciationTransactions []model.DepreciationTransaction             `json:"depreciationTransactions"`
	Annotations              map[annotation.Kind][]annotation.Annotation `json:"annotations"`
}

// requireToken writes 401 and returns false when the request has no token.
func (h *DashboardHandler) requireToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := h.ResponseHelper.Token(r)
	if token == "" {
		h.ErrorHandler.HandleAppError(w, r, errors.UnauthorizedError(), "authorize request")
		return "", false
	}
	return token, true
}

func writeResult[T any](h *DashboardHandler, w http.ResponseWriter, r *http.Request, status int, operation string, result apiclient.Result[T]) {
	if !result.OK() {
		h.ErrorHandler.HandleBackendFailure(w, r, result.Err, operation)
		return
	}
	h.ErrorHandler.SendDataResponse(w, status, result.Data)
}

// list serves a GET backed by one token-only backend call.
func list[T any](h *DashboardHandler, operation string, call func(context.Context, string) apiclient.Result[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := h.requireToken(w, r)
		if !ok {
			return
		}
		ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
		defer cancel()

		writeResult(h, w, r, http.StatusOK, operation, call(ctx, token))
	}
}

// create serves a POST whose JSON body is passed to the backend unchanged.
func create[P, T any](h *DashboardHandler, operation string, call func(context.Context, P, string) apiclient.Result[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := h.requireToken(w, r)
		if !ok {
			return
		}

		var payload P
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&payload); err != nil {
			h.ErrorHandler.HandleJSONDecodeError(w, r, err)
			return
		}

		ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
		defer cancel()

		writeResult(h, w, r, http.StatusCreated, operation, call(ctx, payload, token))
	}
}

func (h *DashboardHandler) ListDepartmentsHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list departments", h.Backend.GetAllDepartments)(w, r)
}

func (h *DashboardHandler) CreateDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create department", h.Backend.CreateDepartment)(w, r)
}

// ListCompaniesHandler lists companies through whichever backend call the
// deployment's auth header expects.
func (h *DashboardHandler) ListCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	call := h.Backend.GetAllCompanies
	if h.LegacyCompanyAuth {
		call = h.Backend.GetAllCompany
	}
	list(h, "list companies", call)(w, r)
}

// CreateCompanyHandler accepts the cost-center shape the backend expects.
func (h *DashboardHandler) CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create company", h.Backend.CreateCompany)(w, r)
}

func (h *DashboardHandler) ListCostCentersHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list cost centers", h.Backend.GetAllCostCenters)(w, r)
}

func (h *DashboardHandler) CreateCostCenterHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create cost center", h.Backend.CreateCostCenter)(w, r)
}

func (h *DashboardHandler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list categories", h.Backend.GetAllCategories)(w, r)
}

func (h *DashboardHandler) CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create category", h.Backend.CreateCategory)(w, r)
}

func (h *DashboardHandler) ListSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list suppliers", h.Backend.GetAllSuppliers)(w, r)
}

func (h *DashboardHandler) CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create supplier", h.Backend.CreateSupplier)(w, r)
}

func (h *DashboardHandler) ListLocationsHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list locations", h.Backend.GetAllLocations)(w, r)
}

func (h *DashboardHandler) CreateLocationHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create location", h.Backend.CreateLocation)(w, r)
}

func (h *DashboardHandler) ListSitesHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list sites", h.Backend.GetAllSites)(w, r)
}

func (h *DashboardHandler) CreateSiteHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create site", h.Backend.CreateSite)(w, r)
}

func (h *DashboardHandler) ListDepreciationBooksHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list depreciation books", h.Backend.GetAllDepreciationBook)(w, r)
}

func (h *DashboardHandler) CreateDepreciationBookHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create depreciation book", h.Backend.CreateDepreciationBook)(w, r)
}

func (h *DashboardHandler) CreateDepreciationInfoHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create depreciation info", h.Backend.CreateDepreciationInfo)(w, r)
}

func (h *DashboardHandler) ListDepreciationTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list depreciation transactions", h.Backend.GetAllDepreciationTransactions)(w, r)
}

func (h *DashboardHandler) CreateAssetDepreciationHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "calculate asset depreciation", h.Backend.CreateAssetDepreciation)(w, r)
}

func (h *DashboardHandler) ListAssetsHandler(w http.ResponseWriter, r *http.Request) {
	list(h, "list assets", h.Backend.GetAllAssets)(w, r)
}

func (h *DashboardHandler) CreateAssetHandler(w http.ResponseWriter, r *http.Request) {
	create(h, "create asset", h.Backend.CreateAsset)(w, r)
}

// GetAssetHandler returns the first details record the backend has for an asset.
func (h *DashboardHandler) GetAssetHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireToken(w, r)
	if !ok {
		return
	}
	id, ok := h.ErrorHandler.ParseAssetID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	result := h.Backend.GetAllAssetDetails(ctx, token, id)
	if !result.OK() {
		h.ErrorHandler.HandleBackendFailure(w, r, result.Err, "get asset details")
		return
	}
	if len(result.Data) == 0 {
		h.ErrorHandler.HandleAppError(w, r, assetNotFound(id), "get asset details")
		return
	}

	h.ErrorHandler.SendDataResponse(w, http.StatusOK, result.Data[0])
}

// AssetOverviewHandler loads an asset's details, its depreciation
// transactions and its local records concurrently. The first failure
// cancels the remaining calls.
func (h *DashboardHandler) AssetOverviewHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := h.requireToken(w, r)
	if !ok {
		return
	}
	id, ok := h.ErrorHandler.ParseAssetID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, OverviewTimeout)
	defer cancel()

	var (
		details      []model.AssetDetails
		transactions []model.DepreciationTransaction
		annotations  map[annotation.Kind][]annotation.Annotation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = h.Backend.GetAllAssetDetails(gctx, token, id).Unwrap()
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = h.Backend.GetAllDepreciationTransactions(gctx, token).Unwrap()
		return err
	})
	g.Go(func() error {
		var err error
		annotations, err = h.Annotations.AssetAnnotations(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		var failure *apiclient.Failure
		if stderrors.As(err, &failure) {
			h.ErrorHandler.HandleBackendFailure(w, r, failure, "load asset overview")
			return
		}
		h.ErrorHandler.HandleAppError(w, r, err, "load asset overview")
		return
	}

	if len(details) == 0 {
		h.ErrorHandler.HandleAppError(w, r, assetNotFound(id), "load asset overview")
		return
	}

	overview := AssetOverview{
		Details:                  details[0],
		DepreciationTransactions: []model.DepreciationTransaction{},
		Annotations:              annotations,
	}
	for _, tx := range transactions {
		if tx.AssetID == id {
			overview.DepreciationTransactions = append(overview.DepreciationTransactions, tx)
		}
	}

	h.ErrorHandler.SendDataResponse(w, http.StatusOK, overview)
}

// HealthHandler reports the service and its optional dependencies
func (h *DashboardHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, HealthCheckTimeout)
	defer cancel()

	checks := map[string]string{}
	if h.DB != nil {
		checks["database"] = "ok"
		if err := h.DB.PingContext(ctx); err != nil {
			checks["database"] = "unreachable"
		}
	}
	if h.Notifier != nil {
		checks["notifier"] = "ok"
		if !h.Notifier.IsHealthy(ctx) {
			checks["notifier"] = "unreachable"
		}
	}

	data := h.ResponseHelper.CreateHealthCheckData(checks)
	status := http.StatusOK
	if checks["database"] == "unreachable" {
		status = http.StatusServiceUnavailable
	}
	h.ErrorHandler.SendJSONResponse(w, status, data)
}

func assetNotFound(id int) *errors.AppError {
	return errors.NewAppError(errors.ErrorCodeAssetNotFound, "asset not found").WithDetail("assetId", id)
}
