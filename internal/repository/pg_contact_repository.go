package repository

import (
	"context"
	"errors"

	"github.com/contactbook/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL is the full shape of the contacts table. CREATE TABLE IF NOT
// EXISTS is atomic, so concurrent callers never race a separate existence
// check.
const schemaSQL = `
	CREATE TABLE IF NOT EXISTS contacts (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(20),
		message TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// EnsureSchema creates the contacts table if it does not already exist.
func (r *PgContactRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return classify("ensure_schema", err)
	}
	return nil
}

// DropSchema removes the contacts table. Used by the migrate tool's reset.
func (r *PgContactRepository) DropSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DROP TABLE IF EXISTS contacts`); err != nil {
		return classify("drop_schema", err)
	}
	return nil
}

// List returns all contacts ordered by created_at descending.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM contacts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, classify("list", err)
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, classify("list", err)
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list", err)
	}
	return contacts, nil
}

// Create inserts a new contact and populates id and created_at from the
// database RETURNING clause. A nil input field is stored as NULL; a nil
// name or email fails the column's NOT NULL constraint.
func (r *PgContactRepository) Create(ctx context.Context, in *model.ContactInput) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, phone, message, created_at`,
		in.Name, in.Email, in.Phone, in.Message,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt)
	if err != nil {
		return nil, classify("create", err)
	}
	return &c, nil
}

// DeleteAll removes every contact row. Deleting from an empty table is not
// an error.
func (r *PgContactRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM contacts`); err != nil {
		return classify("delete_all", err)
	}
	return nil
}

// GetByID returns the contact with the given id. The id is passed to
// Postgres as-is; a non-numeric id fails the integer cast inside the
// statement and surfaces as a database error, not as not-found.
func (r *PgContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM contacts WHERE id = $1::int`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify("get", err)
	}
	return &c, nil
}

// Update overwrites all four mutable fields atomically and returns the
// updated row. id and created_at are never touched.
func (r *PgContactRepository) Update(ctx context.Context, id string, in *model.ContactInput) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`UPDATE contacts SET name = $1, email = $2, phone = $3, message = $4
		 WHERE id = $5::int
		 RETURNING id, name, email, phone, message, created_at`,
		in.Name, in.Email, in.Phone, in.Message, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, classify("update", err)
	}
	return &c, nil
}

// Delete removes the contact with the given id.
func (r *PgContactRepository) Delete(ctx context.Context, id string) error {
	var deleted int
	err := r.pool.QueryRow(ctx,
		`DELETE FROM contacts WHERE id = $1::int RETURNING id`,
		id,
	).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return classify("delete", err)
	}
	return nil
}
