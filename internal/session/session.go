// Package session owns the authoritative in-memory product collection for a
// UI session. Every mutation round-trips through the remote client first;
// only a confirmed result patches the collection, so it always reflects the
// last known good server state.
package session

import (
	"context"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

// Client is the remote access surface the session depends on.
type Client interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, patch domain.ProductPatch) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type Session struct {
	client   Client
	products []domain.Product
	loading  bool
	lastErr  string
}

func New(client Client) *Session {
	return &Session{client: client}
}

// Products returns the current collection, newest first.
func (s *Session) Products() []domain.Product {
	return s.products
}

func (s *Session) Loading() bool {
	return s.loading
}

// Err returns the last failure message, empty when none.
func (s *Session) Err() string {
	return s.lastErr
}

// DismissError clears the visible error message.
func (s *Session) DismissError() {
	s.lastErr = ""
}

// Load replaces the collection with the server's. The error slot is cleared
// on success and set on failure; the loading flag is always cleared.
func (s *Session) Load(ctx context.Context) {
	s.loading = true
	defer func() { s.loading = false }()

	products, err := s.client.List(ctx)
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.products = products
	s.lastErr = ""
}

// Add creates the product remotely and, on success, prepends the
// server-confirmed version. Newest-first is the session's display convention.
func (s *Session) Add(ctx context.Context, patch domain.ProductPatch) {
	created, err := s.client.Create(ctx, patch)
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.products = append([]domain.Product{*created}, s.products...)
}

// ApplyEdit updates the product remotely and, on success, replaces the
// matching entry wholesale with the server-confirmed version.
func (s *Session) ApplyEdit(ctx context.Context, id string, patch domain.ProductPatch) {
	updated, err := s.client.Update(ctx, id, patch)
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = *updated
			break
		}
	}
}

// Remove deletes the product remotely and, on success, drops the matching
// entry. Callers gate this behind explicit confirmation.
func (s *Session) Remove(ctx context.Context, id string) {
	if err := s.client.Delete(ctx, id); err != nil {
		s.lastErr = err.Error()
		return
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
}
