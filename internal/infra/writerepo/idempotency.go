package writerepo

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeForeignKeyViolation = "23503"

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

const insertIdempotencyKeyQuery = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'PROCESSING', $5)
`

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := tx.Exec(ctx, insertIdempotencyKeyQuery, key, userID, endpoint, requestHash, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("idempotency key already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, bookingID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE idempotency_keys SET status = 'COMPLETED', result_booking_id = $3, updated_at = now()
		 WHERE key = $1 AND user_id = $2`,
		key, userID, bookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

// ClaimExpiredKey takes over a key whose previous attempt timed out. The
// WHERE clause only matches expired rows, so a live in-flight request is
// never stolen.
func (r *IdempotencyRepository) ClaimExpiredKey(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE idempotency_keys
		 SET request_hash = $3, status = 'PROCESSING', result_booking_id = NULL, expires_at = $4, updated_at = now()
		 WHERE key = $1 AND user_id = $2 AND expires_at < now()`,
		key, userID, requestHash, pgconv.TimeToPgtype(expiresAt),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected(), nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx db.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		record          shared.IdempotencyRecord
		resultBookingID pgtype.UUID
		expiresAt       pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx,
		`SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		 FROM idempotency_keys WHERE key = $1 AND user_id = $2`,
		key, userID,
	).Scan(&record.Key, &record.UserID, &record.Status, &record.RequestHash, &resultBookingID, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	record.ResultBookingID = pgconv.UUIDPtrFromPgtype(resultBookingID)
	record.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &record, nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx db.DBTX) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at < now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}
