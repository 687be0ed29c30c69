package service

import (
	"asset-dashboard-api/internal/annotation"
	"asset-dashboard-api/internal/repository"
	"asset-dashboard-api/pkg/errors"
	"asset-dashboard-api/pkg/validation"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultUploader is recorded on documents added without an uploader.
const DefaultUploader = "Current User"

// NotificationService interface for sending notifications
type NotificationService interface {
	SendWarrantyNotice(ctx context.Context, notice WarrantyNotice) error
}

// WarrantyNotice reports a warranty that ends soon
type WarrantyNotice struct {
	AssetID       int
	AnnotationID  uuid.UUID
	Type          string
	Provider      string
	EndDate       string
	DaysRemaining int
}

// AnnotationService handles business logic for locally stored asset records
type AnnotationService struct {
	repo           repository.AnnotationRepository
	notifier       NotificationService
	logger         zerolog.Logger
	warrantyWindow time.Duration
	now            func() time.Time
}

// NewAnnotationService creates a new annotation service. notifier may be nil.
func NewAnnotationService(repo repository.AnnotationRepository, notifier NotificationService, logger zerolog.Logger, warrantyWindow time.Duration) *AnnotationService {
	return &AnnotationService{
		repo:           repo,
		notifier:       notifier,
		logger:         logger.With().Str("component", "annotations").Logger(),
		warrantyWindow: warrantyWindow,
		now:            time.Now,
	}
}

// AddAnnotation validates raw as a payload of kind and stores it under a new id.
func (s *AnnotationService) AddAnnotation(ctx context.Context, assetID int, kind annotation.Kind, raw json.RawMessage) (*annotation.Annotation, error) {
	if err := validation.ValidateAssetID(assetID); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	payload := annotation.NewPayload(kind)
	if payload == nil {
		return nil, errors.ValidationError(fmt.Sprintf("unknown annotation kind: %s", kind))
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, errors.InvalidJSONError(err)
	}

	if doc, ok := payload.(*annotation.Document); ok {
		s.applyDocumentDefaults(doc)
	}

	if problems := validation.ValidateAnnotation(payload); len(problems) > 0 {
		return nil, errors.ValidationErrors(fmt.Sprintf("invalid %s", kind), problems)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.InternalError("failed to encode annotation", err)
	}

	a := &annotation.Annotation{
		ID:      uuid.New(),
		AssetID: assetID,
		Kind:    kind,
		Data:    data,
	}
	if err := s.repo.CreateAnnotation(ctx, a); err != nil {
		return nil, errors.DatabaseError("failed to create annotation", err)
	}

	if w, ok := payload.(*annotation.Warranty); ok {
		if notice, due := s.warrantyNoticeFor(a, w); due {
			go s.sendWarrantyNotice(notice)
		}
	}

	s.logger.Info().
		Int("asset_id", assetID).
		Str("kind", string(kind)).
		Str("annotation_id", a.ID.String()).
		Msg("annotation created")

	return a, nil
}

// ListAnnotations returns one kind of record for an asset, oldest first.
func (s *AnnotationService) ListAnnotations(ctx context.Context, assetID int, kind annotation.Kind) ([]annotation.Annotation, error) {
	if err := validation.ValidateAssetID(assetID); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	if !kind.Valid() {
		return nil, errors.ValidationError(fmt.Sprintf("unknown annotation kind: %s", kind))
	}

	annotations, err := s.repo.ListAnnotations(ctx, assetID, kind)
	if err != nil {
		return nil, errors.DatabaseError("failed to retrieve annotations", err)
	}
	return annotations, nil
}

// AssetAnnotations returns every record of an asset keyed by kind. Every
// kind is present, with an empty slice when the asset has none.
func (s *AnnotationService) AssetAnnotations(ctx context.Context, assetID int) (map[annotation.Kind][]annotation.Annotation, error) {
	if err := validation.ValidateAssetID(assetID); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	annotations, err := s.repo.ListAssetAnnotations(ctx, assetID)
	if err != nil {
		return nil, errors.DatabaseError("failed to retrieve annotations", err)
	}

	grouped := make(map[annotation.Kind][]annotation.Annotation, len(annotation.Kinds))
	for _, kind := range annotation.Kinds {
		grouped[kind] = []annotation.Annotation{}
	}
	for _, a := range annotations {
		grouped[a.Kind] = append(grouped[a.Kind], a)
	}
	return grouped, nil
}

// GetAnnotation returns one record of an asset. A record stored under another
// asset or kind is reported as not found.
func (s *AnnotationService) GetAnnotation(ctx context.Context, assetID int, kind annotation.Kind, id uuid.UUID) (*annotation.Annotation, error) {
	if err := validation.ValidateAssetID(assetID); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	if !kind.Valid() {
		return nil, errors.ValidationError(fmt.Sprintf("unknown annotation kind: %s", kind))
	}

	a, err := s.repo.GetAnnotation(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrAnnotationNotFound) {
			return nil, errors.NotFoundError("annotation")
		}
		return nil, errors.DatabaseError("failed to get annotation", err)
	}
	if a.AssetID != assetID || a.Kind != kind {
		return nil, errors.NotFoundError("annotation")
	}
	return a, nil
}

// DeleteAnnotation removes one record of an asset.
func (s *AnnotationService) DeleteAnnotation(ctx context.Context, assetID int, kind annotation.Kind, id uuid.UUID) error {
	if err := validation.ValidateAssetID(assetID); err != nil {
		return errors.ValidationError(err.Error())
	}
	if !kind.Valid() {
		return errors.ValidationError(fmt.Sprintf("unknown annotation kind: %s", kind))
	}

	if err := s.repo.DeleteAnnotation(ctx, assetID, kind, id); err != nil {
		if stderrors.Is(err, repository.ErrAnnotationNotFound) {
			return errors.NotFoundError("annotation")
		}
		return errors.DatabaseError("failed to delete annotation", err)
	}

	s.logger.Info().
		Int("asset_id", assetID).
		Str("kind", string(kind)).
		Str("annotation_id", id.String()).
		Msg("annotation deleted")
	return nil
}

func (s *AnnotationService) applyDocumentDefaults(doc *annotation.Document) {
	if doc.UploadDate == "" {
		doc.UploadDate = s.now().Format(validation.DateLayout)
	}
	if doc.UploadedBy == "" {
		doc.UploadedBy = DefaultUploader
	}
}

// warrantyNoticeFor reports whether w ends between today and the end of the
// notice window. Expired warranties are not reported.
func (s *AnnotationService) warrantyNoticeFor(a *annotation.Annotation, w *annotation.Warranty) (WarrantyNotice, bool) {
	if s.notifier == nil || s.warrantyWindow <= 0 {
		return WarrantyNotice{}, false
	}
	end, err := time.Parse(validation.DateLayout, w.EndDate)
	if err != nil {
		return WarrantyNotice{}, false
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(today) || end.After(today.Add(s.warrantyWindow)) {
		return WarrantyNotice{}, false
	}

	return WarrantyNotice{
		AssetID:       a.AssetID,
		AnnotationID:  a.ID,
		Type:          w.Type,
		Provider:      w.Provider,
		EndDate:       w.EndDate,
		DaysRemaining: int(end.Sub(today).Hours() / 24),
	}, true
}

func (s *AnnotationService) sendWarrantyNotice(notice WarrantyNotice) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.notifier.SendWarrantyNotice(ctx, notice); err != nil {
		s.logger.Error().Err(err).
			Int("asset_id", notice.AssetID).
			Str("annotation_id", notice.AnnotationID.String()).
			Msg("failed to send warranty notice")
		return
	}
	s.logger.Info().
		Int("asset_id", notice.AssetID).
		Int("days_remaining", notice.DaysRemaining).
		Msg("warranty notice sent")
}
