package service

import (
	"context"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// List ensures the schema exists, then returns all contacts newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Create ensures the schema exists, then inserts the contact. Validation
// of required fields is left to the table constraints.
func (s *contactServiceImpl) Create(ctx context.Context, in *model.ContactInput) (*model.Contact, error) {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

// DeleteAll removes every contact.
func (s *contactServiceImpl) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// Get returns one contact by id.
func (s *contactServiceImpl) Get(ctx context.Context, id string) (*model.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites the mutable fields of one contact.
func (s *contactServiceImpl) Update(ctx context.Context, id string, in *model.ContactInput) (*model.Contact, error) {
	return s.repo.Update(ctx, id, in)
}

// Delete removes one contact by id.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
