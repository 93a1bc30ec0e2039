package model

import "time"

// Contact is a row in the contacts table. Phone and Message are nullable
// columns and map to nil when absent.
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput carries the four mutable fields of a create/update request.
// Every field is a pointer so that a field omitted from the JSON body is
// written to the database as NULL; required-field enforcement lives in the
// table's NOT NULL constraints, not in the application layer.
type ContactInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
}
