package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/models"
)

func newTestCipherRepo(t *testing.T) (*cipherRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	repo := &cipherRepository{
		db:     db,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func cipherRows(records ...models.CipherRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(cipherColumns)
	for _, r := range records {
		rows.AddRow(r.ID, string(r.Kind), r.OrganizationID, r.Data, r.Deleted, r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func TestCipherGet_Success(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	want := models.CipherRecord{
		ID:        "3c7dcfb4-02f0-4c5e-9a6b-8d41a7e2c913",
		Kind:      models.KindItem,
		Data:      "encrypted-blob",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("SELECT (.+) FROM ciphers").
		WithArgs(want.ID, string(want.Kind)).
		WillReturnRows(cipherRows(want))

	got, err := repo.Get(context.Background(), models.KindItem, want.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID || got.Kind != want.Kind || got.Data != want.Data {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestCipherGet_NotFound(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM ciphers").
		WillReturnRows(cipherRows())

	_, err := repo.Get(context.Background(), models.KindItem, "missing-id")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestCipherList_ExcludesDeleted(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	first := models.CipherRecord{ID: "id-1", Kind: models.KindItem, Data: "blob-1", CreatedAt: now, UpdatedAt: now}
	second := models.CipherRecord{ID: "id-2", Kind: models.KindItem, Data: "blob-2", CreatedAt: now.Add(time.Second), UpdatedAt: now}

	// The deleted filter travels in the WHERE clause; only live rows come
	// back, in insertion order.
	mock.ExpectQuery("SELECT (.+) FROM ciphers WHERE deleted = (.+) AND kind = (.+) ORDER BY created_at, id").
		WithArgs(false, string(models.KindItem)).
		WillReturnRows(cipherRows(first, second))

	records, err := repo.List(context.Background(), models.KindItem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "id-1" || records[1].ID != "id-2" {
		t.Errorf("unexpected order: %s, %s", records[0].ID, records[1].ID)
	}
}

func TestCipherList_QueryError(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM ciphers").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.List(context.Background(), models.KindItem)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCipherUpsert_Insert(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	record := models.CipherRecord{
		ID:   "id-1",
		Kind: models.KindFolder,
		Data: "encrypted-blob",
	}

	mock.ExpectExec("INSERT INTO ciphers").
		WithArgs(record.ID, string(record.Kind), record.OrganizationID, record.Data, record.Deleted, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCipherUpsert_ExecError(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO ciphers").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Upsert(context.Background(), models.CipherRecord{ID: "id-1", Kind: models.KindItem})
	if !errors.Is(err, ErrObjectNotSaved) {
		t.Fatalf("expected ErrObjectNotSaved, got %v", err)
	}
}

func TestCipherSetDeleted_Success(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE ciphers SET deleted = (.+), updated_at = (.+) WHERE id = (.+) AND kind = (.+)").
		WithArgs(true, sqlmock.AnyArg(), "id-1", string(models.KindItem)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetDeleted(context.Background(), models.KindItem, "id-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCipherSetDeleted_NoRow(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE ciphers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetDeleted(context.Background(), models.KindItem, "missing-id", true)
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestCipherSetOrganization_Success(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE ciphers SET organization_id = (.+), data = (.+), updated_at = (.+)").
		WithArgs("org-1", "reencrypted-blob", sqlmock.AnyArg(), "id-1", string(models.KindItem)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetOrganization(context.Background(), "id-1", "org-1", "reencrypted-blob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCipherSetOrganization_NoRow(t *testing.T) {
	repo, mock, db := newTestCipherRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE ciphers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetOrganization(context.Background(), "missing-id", "org-1", "blob")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}
