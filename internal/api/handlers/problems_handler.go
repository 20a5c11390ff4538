package handlers

import (
	"net/http"

	"github.com/eightd-studio/engine/internal/api/types"
	"github.com/eightd-studio/engine/internal/services"
	"github.com/eightd-studio/engine/internal/validators"
)

const msgProblemNotFound = "Problem not found"

type ProblemsHandler struct {
	svc      services.ProblemService
	validate validators.Validator
}

func NewProblemsHandler(svc services.ProblemService, v validators.Validator) *ProblemsHandler {
	return &ProblemsHandler{svc: svc, validate: v}
}

func (h *ProblemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListProblems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.List(items))
}

func (h *ProblemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", msgProblemNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.GetProblem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OK(p))
}

func (h *ProblemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ProblemCreateRequest
	if err := decode(w, r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.CreateProblem(r.Context(), req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.OKMessage(p, "Problem created successfully"))
}

func (h *ProblemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", msgProblemNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.ProblemUpdateRequest
	if err := decode(w, r, h.validate, &req); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.UpdateProblem(r.Context(), id, req.Input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OKMessage(p, "Problem updated successfully"))
}

func (h *ProblemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", msgProblemNotFound)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteProblem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OKMessage(nil, "Problem deleted successfully"))
}
