package service

import (
	"context"
	"errors"
	"testing"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	ensureSchemaFunc func(ctx context.Context) error
	listFunc         func(ctx context.Context) ([]*model.Contact, error)
	createFunc       func(ctx context.Context, in *model.ContactInput) (*model.Contact, error)
	deleteAllFunc    func(ctx context.Context) error
	getByIDFunc      func(ctx context.Context, id string) (*model.Contact, error)
	updateFunc       func(ctx context.Context, id string, in *model.ContactInput) (*model.Contact, error)
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockContactRepository) EnsureSchema(ctx context.Context) error {
	if m.ensureSchemaFunc != nil {
		return m.ensureSchemaFunc(ctx)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) Create(ctx context.Context, in *model.ContactInput) (*model.Contact, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.Contact{}, nil
}

func (m *mockContactRepository) DeleteAll(ctx context.Context) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx)
	}
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Contact{}, nil
}

func (m *mockContactRepository) Update(ctx context.Context, id string, in *model.ContactInput) (*model.Contact, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &model.Contact{}, nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func strptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestContactService_List_EnsuresSchemaFirst(t *testing.T) {
	var calls []string
	mock := &mockContactRepository{
		ensureSchemaFunc: func(ctx context.Context) error {
			calls = append(calls, "ensure")
			return nil
		},
		listFunc: func(ctx context.Context) ([]*model.Contact, error) {
			calls = append(calls, "list")
			return []*model.Contact{{ID: 1}}, nil
		},
	}
	svc := NewContactService(mock)

	contacts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 1 {
		t.Errorf("expected 1 contact, got %d", len(contacts))
	}
	if len(calls) != 2 || calls[0] != "ensure" || calls[1] != "list" {
		t.Errorf("expected ensure before list, got %v", calls)
	}
}

func TestContactService_List_SchemaErrorStopsQuery(t *testing.T) {
	listed := false
	mock := &mockContactRepository{
		ensureSchemaFunc: func(ctx context.Context) error {
			return errors.New("permission denied")
		},
		listFunc: func(ctx context.Context) ([]*model.Contact, error) {
			listed = true
			return nil, nil
		},
	}
	svc := NewContactService(mock)

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if listed {
		t.Error("List should not run when schema bootstrap fails")
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestContactService_Create_EnsuresSchemaFirst(t *testing.T) {
	var calls []string
	mock := &mockContactRepository{
		ensureSchemaFunc: func(ctx context.Context) error {
			calls = append(calls, "ensure")
			return nil
		},
		createFunc: func(ctx context.Context, in *model.ContactInput) (*model.Contact, error) {
			calls = append(calls, "create")
			return &model.Contact{ID: 9, Name: *in.Name, Email: *in.Email}, nil
		},
	}
	svc := NewContactService(mock)

	in := &model.ContactInput{Name: strptr("Alice"), Email: strptr("alice@example.com")}
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 9 {
		t.Errorf("expected id 9, got %d", created.ID)
	}
	if len(calls) != 2 || calls[0] != "ensure" || calls[1] != "create" {
		t.Errorf("expected ensure before create, got %v", calls)
	}
}

func TestContactService_Create_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, in *model.ContactInput) (*model.Contact, error) {
			return nil, errors.New("unique constraint violated")
		},
	}
	svc := NewContactService(mock)

	in := &model.ContactInput{Name: strptr("Alice"), Email: strptr("alice@example.com")}
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected error")
	}
}

// ---------------------------------------------------------------------------
// Item operations delegate without schema bootstrap
// ---------------------------------------------------------------------------

func TestContactService_Get_DoesNotEnsureSchema(t *testing.T) {
	ensured := false
	mock := &mockContactRepository{
		ensureSchemaFunc: func(ctx context.Context) error {
			ensured = true
			return nil
		},
		getByIDFunc: func(ctx context.Context, id string) (*model.Contact, error) {
			return &model.Contact{ID: 1}, nil
		},
	}
	svc := NewContactService(mock)

	if _, err := svc.Get(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ensured {
		t.Error("item-level Get should not bootstrap the schema")
	}
}

func TestContactService_Get_NotFoundPassesThrough(t *testing.T) {
	mock := &mockContactRepository{
		getByIDFunc: func(ctx context.Context, id string) (*model.Contact, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewContactService(mock)

	_, err := svc.Get(context.Background(), "999")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContactService_Update_PassesIDAndInput(t *testing.T) {
	var gotID string
	var gotIn *model.ContactInput
	mock := &mockContactRepository{
		updateFunc: func(ctx context.Context, id string, in *model.ContactInput) (*model.Contact, error) {
			gotID = id
			gotIn = in
			return &model.Contact{ID: 5, Name: *in.Name, Email: *in.Email}, nil
		},
	}
	svc := NewContactService(mock)

	in := &model.ContactInput{Name: strptr("B"), Email: strptr("b@example.com")}
	if _, err := svc.Update(context.Background(), "5", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "5" {
		t.Errorf("expected id 5, got %q", gotID)
	}
	if gotIn != in {
		t.Error("expected input to pass through unmodified")
	}
}

func TestContactService_Delete_NotFoundPassesThrough(t *testing.T) {
	mock := &mockContactRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	svc := NewContactService(mock)

	if err := svc.Delete(context.Background(), "999"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContactService_DeleteAll_Delegates(t *testing.T) {
	called := false
	mock := &mockContactRepository{
		deleteAllFunc: func(ctx context.Context) error {
			called = true
			return nil
		},
	}
	svc := NewContactService(mock)

	if err := svc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected DeleteAll to be called")
	}
}
