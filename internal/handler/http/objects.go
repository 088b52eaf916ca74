package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/models"
)

// objectKind extracts and validates the {object} route parameter. The
// second return value reports whether a failure envelope was already
// written.
func objectKind(w http.ResponseWriter, r *http.Request, param string) (models.ObjectKind, bool) {
	segment := chi.URLParam(r, param)

	kind, ok := models.ParseObjectKind(segment)
	if !ok {
		logger.FromRequest(r).Debug().Str("object", segment).Msg("unknown object kind requested")
		writeJSON(w, r, models.Fail("unknown object type: "+segment), http.StatusBadRequest)
		return "", false
	}

	return kind, true
}

func (h *Handler) getObject(w http.ResponseWriter, r *http.Request) {
	kind, ok := objectKind(w, r, "object")
	if !ok {
		return
	}

	object, err := h.services.VaultService.GetObject(r.Context(), kind, chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, object)
}

func (h *Handler) listObjects(w http.ResponseWriter, r *http.Request) {
	kind, ok := objectKind(w, r, "objects")
	if !ok {
		return
	}

	objects, length, err := h.services.VaultService.ListObjects(r.Context(), kind, r.URL.Query().Get("search"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, models.ListResponse{Data: objects, Length: length})
}

func (h *Handler) createObject(w http.ResponseWriter, r *http.Request) {
	kind, ok := objectKind(w, r, "object")
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	object, err := h.services.VaultService.CreateObject(r.Context(), kind, body)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, object)
}

func (h *Handler) editObject(w http.ResponseWriter, r *http.Request) {
	kind, ok := objectKind(w, r, "object")
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	object, err := h.services.VaultService.EditObject(r.Context(), kind, chi.URLParam(r, "id"), body)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, object)
}

func (h *Handler) deleteObject(w http.ResponseWriter, r *http.Request) {
	kind, ok := objectKind(w, r, "object")
	if !ok {
		return
	}

	if err := h.services.VaultService.DeleteObject(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}

func (h *Handler) restoreItem(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.RestoreItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}

func (h *Handler) moveItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.VaultService.MoveItem(r.Context(), chi.URLParam(r, "itemid"), chi.URLParam(r, "orgid"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, item)
}

func (h *Handler) confirmOrgMember(w http.ResponseWriter, r *http.Request) {
	organization := r.URL.Query().Get("organizationid")
	if organization == "" {
		writeJSON(w, r, models.Fail("organizationid query parameter is required"), http.StatusBadRequest)
		return
	}

	if err := h.services.OrgService.ConfirmMember(r.Context(), organization, chi.URLParam(r, "id")); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, nil)
}
