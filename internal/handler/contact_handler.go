package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/repository"
	"github.com/contactbook/backend/internal/service"
	"github.com/next-trace/scg-error/contract"
)

// ContactHandler implements the /contacts resource.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// serverFault logs a failure with its classified kind and writes the
// operation's fixed 500 envelope. Validation, conflict and infrastructure
// failures are indistinguishable on the wire; the kind shows up only in
// the logs.
func serverFault(w http.ResponseWriter, op, msg string, err error) {
	attrs := []any{"op", op, "error", err.Error()}
	var typed contract.Error
	if errors.As(err, &typed) {
		attrs = append(attrs, "kind", typed.Key(), "code", typed.Code())
	}
	slog.Error("contact operation failed", attrs...)
	writeError(w, http.StatusInternalServerError, msg)
}

// List handles GET /contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		serverFault(w, "list", "Failed to fetch contacts", err)
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// Create handles POST /contacts. An unparseable body gets the same generic
// 500 as a constraint or connectivity failure; only the datastore decides
// whether required fields are present.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		serverFault(w, "create", "Failed to create contact", err)
		return
	}

	created, err := h.contactService.Create(r.Context(), &in)
	if err != nil {
		serverFault(w, "create", "Failed to create contact", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// DeleteAll handles DELETE /contacts.
func (h *ContactHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.DeleteAll(r.Context()); err != nil {
		serverFault(w, "delete_all", "Failed to delete contacts", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "All contacts deleted"})
}

// Get handles GET /contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		serverFault(w, "get", "Failed to fetch contact", err)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// Update handles PUT /contacts/{id}. All four mutable fields are
// overwritten from the payload; omitted fields become NULL.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		serverFault(w, "update", "Failed to update contact", err)
		return
	}

	updated, err := h.contactService.Update(r.Context(), r.PathValue("id"), &in)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		serverFault(w, "update", "Failed to update contact", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.contactService.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		serverFault(w, "delete", "Failed to delete contact", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted successfully"})
}
