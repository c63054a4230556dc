package readstore

import (
	"context"

	"hutbook/internal/infra"
	"hutbook/internal/infra/db"
	"hutbook/internal/pkg/pgconv"
	"hutbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const customerByIDSQL = `
SELECT id, name, national_id, phone
FROM customers
WHERE id = $1`

const customerByNationalIDSQL = `
SELECT id, name, national_id, phone
FROM customers
WHERE national_id = $1`

const customerExistsSQL = `
SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`

type CustomerReadStore struct {
	dbtx db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{dbtx: dbtx}
}

func (s *CustomerReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	return s.scanSnapshot(ctx, customerByIDSQL, pgconv.UUIDToPgtype(id))
}

func (s *CustomerReadStore) FindSnapshotByNationalID(ctx context.Context, nationalID string) (*shared.CustomerSnapshot, error) {
	return s.scanSnapshot(ctx, customerByNationalIDSQL, nationalID)
}

func (s *CustomerReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := s.dbtx.QueryRow(ctx, customerExistsSQL, pgconv.UUIDToPgtype(id)).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check customer existence", err)
	}
	return exists, nil
}

func (s *CustomerReadStore) scanSnapshot(ctx context.Context, query string, arg any) (*shared.CustomerSnapshot, error) {
	var (
		id         pgtype.UUID
		name       string
		nationalID string
		phone      string
	)
	err := s.dbtx.QueryRow(ctx, query, arg).Scan(&id, &name, &nationalID, &phone)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return &shared.CustomerSnapshot{
		ID:         uuid.UUID(id.Bytes),
		Name:       name,
		NationalID: nationalID,
		Phone:      phone,
	}, nil
}
