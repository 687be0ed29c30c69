package repository

import (
	"asset-dashboard-api/internal/annotation"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var annotationColumns = []string{"id", "asset_id", "kind", "payload", "created_at"}

func setupTestDB(t testing.TB) (*sql.DB, sqlmock.Sqlmock, AnnotationRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewAnnotationRepository(db)
	return db, mock, repo
}

func TestNewAnnotationRepository(t *testing.T) {
	db, _, _ := setupTestDB(t)
	defer db.Close()

	repo := NewAnnotationRepository(db)
	assert.NotNil(t, repo)
}

func TestCreateAnnotation_Success(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	created := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	a := &annotation.Annotation{
		ID:      uuid.New(),
		AssetID: 42,
		Kind:    annotation.KindWarranty,
		Data:    json.RawMessage(`{"type":"Manufacturer","startDate":"2025-01-01","endDate":"2027-01-01","provider":"Haas","description":""}`),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO asset_annotations (id, asset_id, kind, payload) VALUES ($1, $2, $3, $4) RETURNING created_at`)).
		WithArgs(a.ID, 42, "warranty", string(a.Data)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	err := repo.CreateAnnotation(context.Background(), a)

	assert.NoError(t, err)
	assert.Equal(t, created, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAnnotation_DuplicateID(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	a := &annotation.Annotation{ID: uuid.New(), AssetID: 42, Kind: annotation.KindPhoto, Data: json.RawMessage(`{}`)}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO asset_annotations`)).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "asset_annotations_pkey"`))

	err := repo.CreateAnnotation(context.Background(), a)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestCreateAnnotation_DatabaseError(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	a := &annotation.Annotation{ID: uuid.New(), AssetID: 42, Kind: annotation.KindPhoto, Data: json.RawMessage(`{}`)}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO asset_annotations`)).
		WillReturnError(errors.New("connection refused"))

	err := repo.CreateAnnotation(context.Background(), a)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create annotation")
}

func TestListAnnotations_Success(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	now := time.Now().UTC()
	first, second := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(annotationColumns).
		AddRow(first, 42, "photo", []byte(`{"url":"/a.png","caption":"Front view"}`), now).
		AddRow(second, 42, "photo", []byte(`{"url":"/b.png","caption":"Side view"}`), now.Add(time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_id, kind, payload, created_at FROM asset_annotations WHERE asset_id = $1 AND kind = $2 ORDER BY created_at, id`)).
		WithArgs(42, "photo").
		WillReturnRows(rows)

	annotations, err := repo.ListAnnotations(context.Background(), 42, annotation.KindPhoto)

	require.NoError(t, err)
	require.Len(t, annotations, 2)
	assert.Equal(t, first, annotations[0].ID)
	assert.Equal(t, annotation.KindPhoto, annotations[0].Kind)
	assert.JSONEq(t, `{"url":"/b.png","caption":"Side view"}`, string(annotations[1].Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAnnotations_Empty(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_id, kind, payload, created_at FROM asset_annotations`)).
		WithArgs(7, "event").
		WillReturnRows(sqlmock.NewRows(annotationColumns))

	annotations, err := repo.ListAnnotations(context.Background(), 7, annotation.KindEvent)

	require.NoError(t, err)
	assert.NotNil(t, annotations)
	assert.Empty(t, annotations)
}

func TestListAnnotations_QueryError(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_id, kind, payload, created_at FROM asset_annotations`)).
		WillReturnError(errors.New("database error"))

	annotations, err := repo.ListAnnotations(context.Background(), 42, annotation.KindPhoto)

	assert.Error(t, err)
	assert.Nil(t, annotations)
	assert.Contains(t, err.Error(), "failed to query annotations")
}

func TestListAnnotations_ScanError(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(annotationColumns).
		AddRow("not-a-uuid", 42, "photo", []byte(`{}`), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_id, kind, payload, created_at FROM asset_annotations`)).
		WillReturnRows(rows)

	_, err := repo.ListAnnotations(context.Background(), 42, annotation.KindPhoto)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan annotation")
}

func TestListAssetAnnotations_Success(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(annotationColumns).
		AddRow(uuid.New(), 42, "event", []byte(`{"date":"2025-04-02","event":"Maintenance Check"}`), now).
		AddRow(uuid.New(), 42, "warranty", []byte(`{"type":"Manufacturer"}`), now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_id, kind, payload, created_at FROM asset_annotations WHERE asset_id = $1 ORDER BY kind, created_at, id`)).
		WithArgs(42).
		WillReturnRows(rows)

	annotations, err := repo.ListAssetAnnotations(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, annotations, 2)
	assert.Equal(t, annotation.KindEvent, annotations[0].Kind)
	assert.Equal(t, annotation.KindWarranty, annotations[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAnnotation_Success(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	id := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows(annotationColumns).
		AddRow(id, 42, "document", []byte(`{"fileName":"Invoice.pdf"}`), now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_id, kind, payload, created_at FROM asset_annotations WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(rows)

	a, err := repo.GetAnnotation(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, annotation.KindDocument, a.Kind)
	assert.Equal(t, now, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAnnotation_NotFound(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, asset_id, kind, payload, created_at FROM asset_annotations WHERE id = $1`)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	a, err := repo.GetAnnotation(context.Background(), id)

	assert.Nil(t, a)
	assert.Equal(t, ErrAnnotationNotFound, err)
}

func TestDeleteAnnotation_Success(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM asset_annotations WHERE id = $1 AND asset_id = $2 AND kind = $3`)).
		WithArgs(id, 42, "maintenance").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteAnnotation(context.Background(), 42, annotation.KindMaintenance, id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAnnotation_NotFound(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM asset_annotations WHERE id = $1 AND asset_id = $2 AND kind = $3`)).
		WithArgs(id, 43, "maintenance").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAnnotation(context.Background(), 43, annotation.KindMaintenance, id)

	assert.Equal(t, ErrAnnotationNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAnnotation_DatabaseError(t *testing.T) {
	db, mock, repo := setupTestDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM asset_annotations`)).
		WillReturnError(errors.New("database error"))

	err := repo.DeleteAnnotation(context.Background(), 42, annotation.KindPhoto, uuid.New())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete annotation")
}
