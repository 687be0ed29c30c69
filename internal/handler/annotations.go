package handler

import (
	"asset-dashboard-api/internal/annotation"
	"asset-dashboard-api/pkg/errors"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// annotationTarget resolves the asset id and record kind from the route.
func (h *DashboardHandler) annotationTarget(w http.ResponseWriter, r *http.Request) (int, annotation.Kind, bool) {
	vars := mux.Vars(r)
	id, ok := h.ErrorHandler.ParseAssetID(w, vars["id"])
	if !ok {
		return 0, "", false
	}
	kind, ok := annotation.ParseSegment(vars["kind"])
	if !ok {
		h.ErrorHandler.SendErrorResponse(w, http.StatusNotFound, "unknown record type", errors.ErrorCodeNotFound, nil)
		return 0, "", false
	}
	return id, kind, true
}

// ListAnnotationsHandler lists one kind of local record for an asset.
func (h *DashboardHandler) ListAnnotationsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireToken(w, r); !ok {
		return
	}
	assetID, kind, ok := h.annotationTarget(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	annotations, err := h.Annotations.ListAnnotations(ctx, assetID, kind)
	if err != nil {
		h.ErrorHandler.HandleAppError(w, r, err, "list "+string(kind)+" records")
		return
	}
	h.ErrorHandler.SendDataResponse(w, http.StatusOK, annotations)
}

// CreateAnnotationHandler stores a new local record for an asset.
func (h *DashboardHandler) CreateAnnotationHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireToken(w, r); !ok {
		return
	}
	assetID, kind, ok := h.annotationTarget(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, r, err)
		return
	}

	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	created, err := h.Annotations.AddAnnotation(ctx, assetID, kind, json.RawMessage(body))
	if err != nil {
		h.ErrorHandler.HandleAppError(w, r, err, "create "+string(kind)+" record")
		return
	}
	h.ErrorHandler.SendDataResponse(w, http.StatusCreated, created)
}

// GetAnnotationHandler returns one local record.
func (h *DashboardHandler) GetAnnotationHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireToken(w, r); !ok {
		return
	}
	assetID, kind, ok := h.annotationTarget(w, r)
	if !ok {
		return
	}
	id, ok := h.ErrorHandler.ParseAnnotationID(w, mux.Vars(r)["annotation_id"])
	if !ok {
		return
	}

	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	found, err := h.Annotations.GetAnnotation(ctx, assetID, kind, id)
	if err != nil {
		h.ErrorHandler.HandleAppError(w, r, err, "get "+string(kind)+" record")
		return
	}
	h.ErrorHandler.SendDataResponse(w, http.StatusOK, found)
}

// DeleteAnnotationHandler removes a local record.
func (h *DashboardHandler) DeleteAnnotationHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireToken(w, r); !ok {
		return
	}
	assetID, kind, ok := h.annotationTarget(w, r)
	if !ok {
		return
	}
	id, ok := h.ErrorHandler.ParseAnnotationID(w, mux.Vars(r)["annotation_id"])
	if !ok {
		return
	}

	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	if err := h.Annotations.DeleteAnnotation(ctx, assetID, kind, id); err != nil {
		h.ErrorHandler.HandleAppError(w, r, err, "delete "+string(kind)+" record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
