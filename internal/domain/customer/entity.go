package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNameRequired = errors.New("customer name is required")

type Customer struct {
	id         uuid.UUID
	name       string
	nationalID NationalID
	phone      string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCustomer(name string, nationalID NationalID, phone string) (*Customer, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}
	return &Customer{
		id:         uuid.New(),
		name:       trimmed,
		nationalID: nationalID,
		phone:      strings.TrimSpace(phone),
	}, nil
}

func ReconstructCustomer(id uuid.UUID, name string, nationalID NationalID, phone string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:         id,
		name:       name,
		nationalID: nationalID,
		phone:      phone,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ReadyToBook reports whether the identity info required before a booking
// can be created is on file.
func (c *Customer) ReadyToBook() bool {
	return c.name != "" && !c.nationalID.IsZero()
}

func (c *Customer) ID() uuid.UUID         { return c.id }
func (c *Customer) Name() string          { return c.name }
func (c *Customer) NationalID() NationalID { return c.nationalID }
func (c *Customer) Phone() string         { return c.phone }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time  { return c.updatedAt }
