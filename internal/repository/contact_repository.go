package repository

import (
	"context"

	"github.com/contactbook/backend/internal/model"
)

// ContactRepository defines the persistence interface for contacts.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// EnsureSchema creates the contacts table if it does not exist.
	// Idempotent and safe to call concurrently.
	EnsureSchema(ctx context.Context) error

	// List returns all contacts, newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	// Create inserts a new contact and returns it with the
	// database-assigned id and created_at.
	Create(ctx context.Context, in *model.ContactInput) (*model.Contact, error)

	// DeleteAll removes every contact.
	DeleteAll(ctx context.Context) error

	// GetByID returns the contact with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Contact, error)

	// Update overwrites the four mutable fields of the contact with the
	// given id and returns the updated row, or ErrNotFound.
	Update(ctx context.Context, id string, in *model.ContactInput) (*model.Contact, error)

	// Delete removes the contact with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
