package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hutbook/internal/domain/booking"
	"hutbook/internal/infra"
	"hutbook/internal/infra/db"
	"hutbook/internal/pkg/pgconv"
	"hutbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBookingSQL = `
INSERT INTO bookings (
    id, reference, property_id, customer_id, booking_date, shift,
    status, source, total_cents, advance_cents, payment_ref, reason,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

const expireStaleSQL = `
UPDATE bookings
SET status = $1, updated_at = $2
WHERE status = ANY($3) AND created_at <= $4
RETURNING id`

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id pgtype.UUID
	err := dbtx.QueryRow(ctx, insertBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		b.Reference().String(),
		pgconv.UUIDToPgtype(b.PropertyID()),
		pgconv.UUIDToPgtype(b.CustomerID()),
		pgconv.DateToPgtype(b.BookingDate()),
		string(b.Shift()),
		string(b.Status()),
		string(b.Source()),
		b.TotalCost().Cents(),
		b.Advance().Cents(),
		pgconv.StringPtrToPgtype(b.PaymentRef()),
		pgconv.StringPtrToPgtype(b.Reason()),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to insert booking", err)
	}
	return uuid.UUID(id.Bytes), nil
}

// UpdateStatus applies a guarded transition: the row changes only while
// its status is still one of upd.From. Returns rows affected so callers
// can detect a lost race.
func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, upd shared.StatusUpdate) (int64, error) {
	sets := []string{"status = $2", "updated_at = $3"}
	args := []any{pgconv.UUIDToPgtype(upd.ID), string(upd.To), pgconv.TimeToPgtype(upd.Now)}

	if upd.PaymentRef != nil {
		args = append(args, *upd.PaymentRef)
		sets = append(sets, fmt.Sprintf("payment_ref = $%d", len(args)))
	} else if upd.ClearPaymentRef {
		sets = append(sets, "payment_ref = NULL")
	}
	if upd.Reason != nil {
		args = append(args, *upd.Reason)
		sets = append(sets, fmt.Sprintf("reason = $%d", len(args)))
	}

	args = append(args, statusStrings(upd.From))
	query := fmt.Sprintf(
		"UPDATE bookings SET %s WHERE id = $1 AND status = ANY($%d)",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		// A transition back into a blocking status can trip the overlap
		// exclusion constraint, so classify instead of wrapping blindly.
		return 0, classifyWriteErr("failed to update booking status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) ExpireStale(ctx context.Context, dbtx db.DBTX, statuses []booking.Status, cutoff, now time.Time) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, expireStaleSQL,
		string(booking.StatusExpired),
		pgconv.TimeToPgtype(now),
		statusStrings(statuses),
		pgconv.TimeToPgtype(cutoff),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire stale bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired booking id", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired booking ids", err)
	}
	return ids, nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
