package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hutbook/internal/domain/booking"
	"hutbook/internal/infra"
	"hutbook/internal/infra/db"
	"hutbook/internal/pkg/pgconv"
	"hutbook/internal/usecase/queries"
	"hutbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingSnapshotSQL = `
SELECT id, reference, property_id, customer_id, booking_date, shift,
       status, source, total_cents, advance_cents, payment_ref, reason,
       created_at, updated_at
FROM bookings
WHERE id = $1`

const countConflictsSQL = `
SELECT COUNT(*)
FROM bookings
WHERE property_id = $1
  AND booking_date = $2
  AND shift = ANY($3)
  AND status = ANY($4)`

const bookingViewSQL = `
SELECT b.id, b.reference, b.property_id, p.name, b.customer_id, c.name,
       b.booking_date, b.shift, b.status, b.source,
       b.total_cents, b.advance_cents, b.payment_ref, b.reason,
       b.created_at, b.updated_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
JOIN customers c ON c.id = b.customer_id`

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (s *BookingReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row := s.dbtx.QueryRow(ctx, bookingSnapshotSQL, pgconv.UUIDToPgtype(id))

	var (
		snapID      pgtype.UUID
		reference   string
		propertyID  pgtype.UUID
		customerID  pgtype.UUID
		bookingDate pgtype.Date
		shift       string
		status      string
		source      string
		totalCents  int64
		advance     int64
		paymentRef  pgtype.Text
		reason      pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := row.Scan(&snapID, &reference, &propertyID, &customerID, &bookingDate, &shift,
		&status, &source, &totalCents, &advance, &paymentRef, &reason, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return &shared.BookingSnapshot{
		ID:           uuid.UUID(snapID.Bytes),
		Reference:    reference,
		PropertyID:   uuid.UUID(propertyID.Bytes),
		CustomerID:   uuid.UUID(customerID.Bytes),
		BookingDate:  pgconv.DateFromPgtype(bookingDate),
		Shift:        booking.Shift(shift),
		Status:       booking.Status(status),
		Source:       booking.Source(source),
		TotalCents:   totalCents,
		AdvanceCents: advance,
		PaymentRef:   pgconv.StringPtrFromPgtype(paymentRef),
		Reason:       pgconv.StringPtrFromPgtype(reason),
		CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:    pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (s *BookingReadStore) CountConflicts(ctx context.Context, propertyID uuid.UUID, date time.Time, shifts []booking.Shift, statuses []booking.Status) (int64, error) {
	var count int64
	err := s.dbtx.QueryRow(ctx, countConflictsSQL,
		pgconv.UUIDToPgtype(propertyID),
		pgconv.DateToPgtype(date),
		shiftStrings(shifts),
		statusStrings(statuses),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count conflicting bookings", err)
	}
	return count, nil
}

// PropertiesWithConflicts runs every probe in one pass so the batch
// search needs a single round trip regardless of candidate count.
func (s *BookingReadStore) PropertiesWithConflicts(ctx context.Context, probes []booking.Probe, statuses []booking.Status) ([]uuid.UUID, error) {
	if len(probes) == 0 {
		return nil, nil
	}

	args := []any{statusStrings(statuses)}
	clauses := make([]string, 0, len(probes))
	for _, probe := range probes {
		args = append(args, pgconv.DateToPgtype(probe.Date))
		dateArg := len(args)
		args = append(args, shiftStrings(probe.Shifts))
		clauses = append(clauses, fmt.Sprintf("(booking_date = $%d AND shift = ANY($%d))", dateArg, len(args)))
	}

	query := fmt.Sprintf(
		"SELECT DISTINCT property_id FROM bookings WHERE status = ANY($1) AND (%s)",
		strings.Join(clauses, " OR "),
	)

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find conflicting properties", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflicting property id", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read conflicting property ids", err)
	}
	return ids, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.dbtx.QueryRow(ctx, bookingViewSQL+" WHERE b.id = $1", pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]queries.BookingView, error) {
	rows, err := s.dbtx.Query(ctx, bookingViewSQL+" WHERE b.customer_id = $1 ORDER BY b.created_at DESC", pgconv.UUIDToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	defer rows.Close()

	var views []queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer bookings", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		id           pgtype.UUID
		reference    string
		propertyID   pgtype.UUID
		propertyName string
		customerID   pgtype.UUID
		customerName string
		bookingDate  pgtype.Date
		shift        string
		status       string
		source       string
		totalCents   int64
		advanceCents int64
		paymentRef   pgtype.Text
		reason       pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(&id, &reference, &propertyID, &propertyName, &customerID, &customerName,
		&bookingDate, &shift, &status, &source, &totalCents, &advanceCents,
		&paymentRef, &reason, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:             uuid.UUID(id.Bytes),
		Reference:      reference,
		PropertyID:     uuid.UUID(propertyID.Bytes),
		PropertyName:   propertyName,
		CustomerID:     uuid.UUID(customerID.Bytes),
		CustomerName:   customerName,
		BookingDate:    pgconv.DateFromPgtype(bookingDate),
		Shift:          shift,
		Status:         status,
		Source:         source,
		TotalCents:     totalCents,
		AdvanceCents:   advanceCents,
		RemainingCents: totalCents - advanceCents,
		PaymentRef:     pgconv.StringPtrFromPgtype(paymentRef),
		Reason:         pgconv.StringPtrFromPgtype(reason),
		CreatedAt:      pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:      pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
