package repository

import (
	"asset-dashboard-api/internal/annotation"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Custom errors for better error handling
var (
	ErrAnnotationNotFound = errors.New("annotation not found")
	ErrDuplicateID        = errors.New("annotation with this id already exists")
)

// AnnotationRepository stores the records operators attach to backend assets.
type AnnotationRepository interface {
	CreateAnnotation(ctx context.Context, a *annotation.Annotation) error
	ListAnnotations(ctx context.Context, assetID int, kind annotation.Kind) ([]annotation.Annotation, error)
	ListAssetAnnotations(ctx context.Context, assetID int) ([]annotation.Annotation, error)
	GetAnnotation(ctx context.Context, id uuid.UUID) (*annotation.Annotation, error)
	DeleteAnnotation(ctx context.Context, assetID int, kind annotation.Kind, id uuid.UUID) error
}

type annotationRepository struct {
	DB *sql.DB
}

// NewAnnotationRepository creates a new AnnotationRepository.
func NewAnnotationRepository(db *sql.DB) AnnotationRepository {
	return &annotationRepository{DB: db}
}

// CreateAnnotation inserts a and fills in CreatedAt from the database.
func (r *annotationRepository) CreateAnnotation(ctx context.Context, a *annotation.Annotation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO asset_annotations (id, asset_id, kind, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	// jsonb is sent as text; lib/pq would encode []byte as bytea.
	err := r.DB.QueryRowContext(ctx, query, a.ID, a.AssetID, string(a.Kind), string(a.Data)).Scan(&a.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		return fmt.Errorf("failed to create annotation: %w", err)
	}

	return nil
}

// ListAnnotations returns one kind of annotation for an asset, oldest first.
func (r *annotationRepository) ListAnnotations(ctx context.Context, assetID int, kind annotation.Kind) ([]annotation.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		SELECT id, asset_id, kind, payload, created_at
		FROM asset_annotations
		WHERE asset_id = $1 AND kind = $2
		ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, assetID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer rows.Close()

	return scanAnnotations(rows)
}

// ListAssetAnnotations returns every annotation for an asset grouped by kind.
func (r *annotationRepository) ListAssetAnnotations(ctx context.Context, assetID int) ([]annotation.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		SELECT id, asset_id, kind, payload, created_at
		FROM asset_annotations
		WHERE asset_id = $1
		ORDER BY kind, created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer rows.Close()

	return scanAnnotations(rows)
}

// GetAnnotation retrieves a single annotation by its ID.
func (r *annotationRepository) GetAnnotation(ctx context.Context, id uuid.UUID) (*annotation.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT id, asset_id, kind, payload, created_at
		FROM asset_annotations
		WHERE id = $1`

	var a annotation.Annotation
	var kind string
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.AssetID, &kind, &payload, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAnnotationNotFound
		}
		return nil, fmt.Errorf("failed to get annotation: %w", err)
	}
	a.Kind = annotation.Kind(kind)
	a.Data = payload

	return &a, nil
}

// DeleteAnnotation removes an annotation. The asset and kind must match so a
// record cannot be deleted through another asset's URL.
func (r *annotationRepository) DeleteAnnotation(ctx context.Context, assetID int, kind annotation.Kind, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `DELETE FROM asset_annotations WHERE id = $1 AND asset_id = $2 AND kind = $3`

	result, err := r.DB.ExecContext(ctx, query, id, assetID, string(kind))
	if err != nil {
		return fmt.Errorf("failed to delete annotation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAnnotationNotFound
	}

	return nil
}

func scanAnnotations(rows *sql.Rows) ([]annotation.Annotation, error) {
	annotations := []annotation.Annotation{}
	for rows.Next() {
		var a annotation.Annotation
		var kind string
		var payload []byte
		if err := rows.Scan(&a.ID, &a.AssetID, &kind, &payload, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		a.Kind = annotation.Kind(kind)
		a.Data = payload
		annotations = append(annotations, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return annotations, nil
}
