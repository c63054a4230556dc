package repository

import (
	"context"

	"hutbook/internal/domain/customer"
	"hutbook/internal/infra/db"
	"hutbook/internal/pkg/pgconv"
	"hutbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertCustomerSQL = `
INSERT INTO customers (id, name, national_id, phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type CustomerRepository struct{}

func NewCustomerRepository() shared.CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, dbtx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	var id pgtype.UUID
	err := dbtx.QueryRow(ctx, insertCustomerSQL,
		pgconv.UUIDToPgtype(c.ID()),
		c.Name(),
		c.NationalID().String(),
		c.Phone(),
		pgconv.TimeToPgtype(c.CreatedAt()),
		pgconv.TimeToPgtype(c.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to insert customer", err)
	}
	return uuid.UUID(id.Bytes), nil
}
