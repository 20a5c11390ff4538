package handlers

import (
	"net/http"

	"github.com/eightd-studio/engine/internal/api/types"
	"github.com/eightd-studio/engine/internal/services"
	"github.com/eightd-studio/engine/internal/validators"
)

const msgCauseNotFound = "Cause not found"

type CausesHandler struct {
	svc      services.CauseService
	validate validators.Validator
}

func NewCausesHandler(svc services.CauseService, v validators.Validator) *CausesHandler {
	return &CausesHandler{svc: svc, validate: v}
}

// Tree answers with the nested cause forest of a problem. count is the number
// of top-level causes.
func (h *CausesHandler) Tree(w http.ResponseWriter, r *http.Request) {
	problemID, err := pathID(r, "id", msgProblemNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	tree, err := h.svc.GetTree(r.Context(), problemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	count := len(tree.Roots)
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success:   true,
		Data:      tree.Roots,
		Count:     &count,
		ProblemID: &tree.ProblemID,
		Stats:     &tree.Stats,
	})
}

func (h *CausesHandler) RootCauses(w http.ResponseWriter, r *http.Request) {
	problemID, err := pathID(r, "id", msgProblemNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := h.svc.ListRootCauses(r.Context(), problemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := types.List(items)
	resp.ProblemID = &problemID
	writeJSON(w, http.StatusOK, resp)
}

func (h *CausesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", msgCauseNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.GetCause(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(c))
}

func (h *CausesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CauseCreateRequest
	if err := decode(w, r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateCause(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.OKMessage(c, "Cause created successfully"))
}

func (h *CausesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", msgCauseNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.CauseUpdateRequest
	if err := decode(w, r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCause(r.Context(), id, req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OKMessage(c, "Cause updated successfully"))
}

func (h *CausesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", msgCauseNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	removed, err := h.svc.DeleteCause(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OKMessage(types.Deleted{ID: id, Removed: removed}, "Cause deleted successfully (including children)"))
}
