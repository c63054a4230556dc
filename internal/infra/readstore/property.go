package readstore

import (
	"context"
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

const propertySnapshotSQL = `
SELECT id, name, capacity, advance_percent
FROM properties
WHERE id = $1`

const rateForSQL = `
SELECT rate_cents
FROM property_rates
WHERE property_id = $1 AND weekday = $2 AND shift = $3`

const findAllPropertiesSQL = `
SELECT id, name, location, capacity, advance_percent
FROM properties
ORDER BY capacity, name`

type PropertyReadStore struct {
	dbtx db.DBTX
}

func NewPropertyReadStore(dbtx db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{dbtx: dbtx}
}

func (s *PropertyReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	var (
		snapID         pgtype.UUID
		name           string
		capacity       int
		advancePercent int
	)
	err := s.dbtx.QueryRow(ctx, propertySnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&snapID, &name, &capacity, &advancePercent)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}
	return &shared.PropertySnapshot{
		ID:             uuid.UUID(snapID.Bytes),
		Name:           name,
		Capacity:       capacity,
		AdvancePercent: advancePercent,
	}, nil
}

func (s *PropertyReadStore) RateFor(ctx context.Context, propertyID uuid.UUID, weekday time.Weekday, shift booking.Shift) (int64, error) {
	var rate int64
	err := s.dbtx.QueryRow(ctx, rateForSQL,
		pgconv.UUIDToPgtype(propertyID),
		int(weekday),
		string(shift),
	).Scan(&rate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("rate not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find rate", err)
	}
	return rate, nil
}

// FindAll lists every property; the capacity rule is applied in the
// use case so it stays in the domain.
func (s *PropertyReadStore) FindAll(ctx context.Context) ([]queries.PropertyCandidate, error) {
	rows, err := s.dbtx.Query(ctx, findAllPropertiesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()

	var candidates []queries.PropertyCandidate
	for rows.Next() {
		var (
			id             pgtype.UUID
			name           string
			location       string
			capacity       int
			advancePercent int
		)
		if err := rows.Scan(&id, &name, &location, &capacity, &advancePercent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate property", err)
		}
		candidates = append(candidates, queries.PropertyCandidate{
			ID:             uuid.UUID(id.Bytes),
			Name:           name,
			Location:       location,
			Capacity:       capacity,
			AdvancePercent: advancePercent,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read candidate properties", err)
	}
	return candidates, nil
}
