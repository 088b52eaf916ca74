package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/models"
)

// maxAttachmentUpload bounds multipart uploads at 128 MiB.
const maxAttachmentUpload = 128 << 20

// getAttachment retrieves and decrypts one attachment of an item. With an
// `output` query parameter the plaintext is persisted to disk and the
// resolved path is returned; without it the raw bytes are streamed back as
// a binary response.
func (h *Handler) getAttachment(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("itemid")
	if itemID == "" {
		writeJSON(w, r, models.Fail("itemid query parameter is required"), http.StatusBadRequest)
		return
	}

	selector := chi.URLParam(r, "id")

	if output, saveToDisk := queryOutput(r); saveToDisk {
		saved, err := h.services.AttachmentService.RetrieveToFile(r.Context(), itemID, selector, output)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeSuccess(w, r, saved)
		return
	}

	meta, plaintext, err := h.services.AttachmentService.Retrieve(r.Context(), itemID, selector)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, models.FileResponse{FileName: meta.FileName, Content: plaintext})
}

func queryOutput(r *http.Request) (string, bool) {
	if !r.URL.Query().Has("output") {
		return "", false
	}
	return r.URL.Query().Get("output"), true
}

// createAttachment uploads a new attachment to an item from a multipart
// form with a single "file" part.
func (h *Handler) createAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	itemID := r.URL.Query().Get("itemid")
	if itemID == "" {
		writeJSON(w, r, models.Fail("itemid query parameter is required"), http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentUpload); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeJSON(w, r, models.Fail("invalid multipart form"), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("multipart form has no file part")
		writeJSON(w, r, models.Fail("a file part is required"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	item, err := h.services.AttachmentService.Upload(r.Context(), itemID, header.Filename, content)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, item)
}
