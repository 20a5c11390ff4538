package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/eightd-studio/engine/internal/api/types"
	"github.com/eightd-studio/engine/internal/validators"
	appErr "github.com/eightd-studio/engine/pkg/errors"
	"github.com/eightd-studio/engine/pkg/logger"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

var errMalformed = appErr.New(appErr.CodeInvalid, types.MsgInvalidJSON)

func writeJSON(w http.ResponseWriter, status int, v any) {
	types.WriteJSON(w, status, v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := types.FromAppError(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, resp)
}

// decode reads a JSON body into dst and runs its schema validation.
func decode(w http.ResponseWriter, r *http.Request, v validators.Validator, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errMalformed
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errMalformed
	}
	if err := v.Struct(dst); err != nil {
		return appErr.Invalid(validators.Messages(err)...)
	}
	return nil
}

// pathID reads a numeric route parameter. Routes only match digits, so the
// only failure left is overflow, which cannot name an existing row.
func pathID(r *http.Request, key, notFound string) (uint, error) {
	n, err := strconv.ParseUint(chi.URLParam(r, key), 10, strconv.IntSize)
	if err != nil {
		return 0, appErr.NotFound(notFound)
	}
	return uint(n), nil
}
