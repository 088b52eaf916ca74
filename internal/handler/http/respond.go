package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ashmarin/vault-serve/internal/logger"
	"github.com/ashmarin/vault-serve/models"
)

// writeSuccess serializes a success envelope. When data is a
// [models.FileResponse] the JSON envelope is bypassed and the raw bytes are
// streamed with attachment headers instead.
func writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	if file, ok := data.(models.FileResponse); ok {
		writeFile(w, r, file)
		return
	}

	writeJSON(w, r, models.OK(data), http.StatusOK)
}

// writeFailure serializes a failure envelope. Every failure maps to one
// generic non-2xx status; individual error kinds are distinguished by the
// envelope message, not the status code.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed")
	writeJSON(w, r, models.Fail(failureMessage(err)), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, r *http.Request, envelope models.Response, statusCode int) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to marshal response envelope")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(payload)
}

// writeFile streams a binary payload with content-disposition metadata
// taken from the payload's file name and length.
func writeFile(w http.ResponseWriter, _ *http.Request, file models.FileResponse) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(file.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Content)
}
