package product

import (
	"errors"
	"time"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

// record is the storage shape of a product: the transfer fields plus the
// store primary key and write timestamps.
type record struct {
	Key         string
	Name        string
	Code        string
	Count       int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// newRecord maps a patch onto the storage shape. CreatedAt keeps the given
// value, or defaults to now when zero; UpdatedAt is always stamped with now.
// Validation is the caller's responsibility.
func newRecord(p domain.ProductPatch, createdAt, now time.Time) record {
	if createdAt.IsZero() {
		createdAt = now
	}
	return record{
		Name:        p.Name,
		Code:        p.Code,
		Count:       p.Count,
		Description: p.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	}
}

// transfer maps the storage shape to the transfer shape, exposing the primary
// key as the string id. A record without a key is a programming error.
func (r record) transfer() (domain.Product, error) {
	if r.Key == "" {
		return domain.Product{}, errors.New("product record has no primary key")
	}
	return domain.Product{
		ID:          r.Key,
		Name:        r.Name,
		Code:        r.Code,
		Count:       r.Count,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}
