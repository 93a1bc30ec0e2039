package service

import (
	"context"

	"github.com/contactbook/backend/internal/model"
)

// ContactService defines the business operations over contacts.
type ContactService interface {
	// List returns every contact, newest first. The schema is ensured
	// before the query so a freshly provisioned database works.
	List(ctx context.Context) ([]*model.Contact, error)

	// Create stores a new contact and returns it with the assigned id
	// and created_at. The schema is ensured before the insert.
	Create(ctx context.Context, in *model.ContactInput) (*model.Contact, error)

	// DeleteAll removes every contact. Idempotent.
	DeleteAll(ctx context.Context) error

	// Get returns one contact by id, or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.Contact, error)

	// Update overwrites the four mutable fields of one contact and
	// returns the updated row, or repository.ErrNotFound.
	Update(ctx context.Context, id string, in *model.ContactInput) (*model.Contact, error)

	// Delete removes one contact by id, or returns repository.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
