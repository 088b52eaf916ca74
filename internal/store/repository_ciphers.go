package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/models"
)

// cipherRepository is the sqlite-backed implementation of [VaultStore]. It
// executes all cipher CRUD operations against the "ciphers" table, building
// queries with squirrel.
type cipherRepository struct {
	db     *sql.DB
	logger *logger.Logger
}

var cipherColumns = []string{"id", "kind", "organization_id", "data", "deleted", "created_at", "updated_at"}

// NewCipherRepository constructs a [VaultStore] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewCipherRepository(db *sql.DB, logger *logger.Logger) VaultStore {
	return &cipherRepository{db: db, logger: logger}
}

// Get implements [VaultStore].
func (c *cipherRepository) Get(ctx context.Context, kind models.ObjectKind, id string) (models.CipherRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(cipherColumns...).
		From("ciphers").
		Where(sq.Eq{"kind": string(kind), "id": id}).
		ToSql()
	if err != nil {
		return models.CipherRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := c.db.QueryRowContext(ctx, query, args...)

	record, err := scanCipher(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CipherRecord{}, ErrObjectNotFound
		}
		log.Err(err).
			Str("func", "cipherRepository.Get").
			Str("id", id).
			Msg("failed to scan cipher row")
		return models.CipherRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// List implements [VaultStore]. Rows come back in insertion order
// (created_at, then id as tiebreak) so resolution candidates stay stable.
func (c *cipherRepository) List(ctx context.Context, kind models.ObjectKind) ([]models.CipherRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(cipherColumns...).
		From("ciphers").
		Where(sq.Eq{"kind": string(kind), "deleted": false}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.List").
			Str("kind", string(kind)).
			Msg("failed to execute query for listing ciphers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CipherRecord, 0, 50)

	for rows.Next() {
		record, scanErr := scanCipher(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "cipherRepository.List").
				Str("kind", string(kind)).
				Msg("failed to scan cipher row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// Upsert implements [VaultStore].
func (c *cipherRepository) Upsert(ctx context.Context, record models.CipherRecord) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	query, args, err := sq.Insert("ciphers").
		Columns(cipherColumns...).
		Values(record.ID, string(record.Kind), record.OrganizationID, record.Data, record.Deleted, record.CreatedAt, record.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET organization_id = excluded.organization_id, data = excluded.data, deleted = excluded.deleted, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "cipherRepository.Upsert").
			Str("id", record.ID).
			Msg("failed to upsert cipher")
		return fmt.Errorf("%w: %w", ErrObjectNotSaved, err)
	}

	return nil
}

// SetDeleted implements [VaultStore].
func (c *cipherRepository) SetDeleted(ctx context.Context, kind models.ObjectKind, id string, deleted bool) error {
	query, args, err := sq.Update("ciphers").
		Set("deleted", deleted).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"kind": string(kind), "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.execExpectingRow(ctx, query, args)
}

// SetOrganization implements [VaultStore].
func (c *cipherRepository) SetOrganization(ctx context.Context, id, organizationID, data string) error {
	query, args, err := sq.Update("ciphers").
		Set("organization_id", organizationID).
		Set("data", data).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"kind": string(models.KindItem), "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.execExpectingRow(ctx, query, args)
}

func (c *cipherRepository) execExpectingRow(ctx context.Context, query string, args []any) error {
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrObjectNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCipher(row rowScanner) (models.CipherRecord, error) {
	var (
		record models.CipherRecord
		kind   string
	)

	err := row.Scan(
		&record.ID,
		&kind,
		&record.OrganizationID,
		&record.Data,
		&record.Deleted,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return models.CipherRecord{}, err
	}

	record.Kind = models.ObjectKind(kind)
	return record, nil
}
