package types

import (
	"bytes"
	"encoding/json"

	"github.com/eightd-studio/engine/internal/services"
)

// Request schemas check shape and size only. Business rules, such as required
// fields and the root-cause action rule, are enforced on the models.

type ProblemCreateRequest struct {
	Title           string `json:"title" validate:"max=255"`
	Description     string `json:"description" validate:"max=10000"`
	ResponsibleTeam string `json:"responsible_team" validate:"max=255"`
	Status          string `json:"status"`
}

func (r ProblemCreateRequest) Input() *services.CreateProblemInput {
	return &services.CreateProblemInput{
		Title:           r.Title,
		Description:     r.Description,
		ResponsibleTeam: r.ResponsibleTeam,
		Status:          r.Status,
	}
}

type ProblemUpdateRequest struct {
	Title           *string `json:"title" validate:"omitempty,max=255"`
	Description     *string `json:"description" validate:"omitempty,max=10000"`
	ResponsibleTeam *string `json:"responsible_team" validate:"omitempty,max=255"`
	Status          *string `json:"status"`
}

func (r ProblemUpdateRequest) Input() *services.UpdateProblemInput {
	return &services.UpdateProblemInput{
		Title:           r.Title,
		Description:     r.Description,
		ResponsibleTeam: r.ResponsibleTeam,
		Status:          r.Status,
	}
}

type CauseCreateRequest struct {
	ProblemID       uint    `json:"problem_id"`
	ParentID        *uint   `json:"parent_id"`
	CauseText       string  `json:"cause_text" validate:"max=10000"`
	IsRootCause     bool    `json:"is_root_cause"`
	PermanentAction *string `json:"permanent_action" validate:"omitempty,max=10000"`
	OrderIndex      int     `json:"order_index"`
}

func (r CauseCreateRequest) Input() *services.CreateCauseInput {
	return &services.CreateCauseInput{
		ProblemID:       r.ProblemID,
		ParentID:        r.ParentID,
		CauseText:       r.CauseText,
		IsRootCause:     r.IsRootCause,
		PermanentAction: r.PermanentAction,
		OrderIndex:      r.OrderIndex,
	}
}

type CauseUpdateRequest struct {
	CauseText       *string    `json:"cause_text" validate:"omitempty,max=10000"`
	IsRootCause     *bool      `json:"is_root_cause"`
	PermanentAction *string    `json:"permanent_action" validate:"omitempty,max=10000"`
	OrderIndex      *int       `json:"order_index"`
	ParentID        OptionalID `json:"parent_id"`
}

func (r CauseUpdateRequest) Input() *services.UpdateCauseInput {
	return &services.UpdateCauseInput{
		CauseText:       r.CauseText,
		IsRootCause:     r.IsRootCause,
		PermanentAction: r.PermanentAction,
		OrderIndex:      r.OrderIndex,
		ParentSet:       r.ParentID.Set,
		ParentID:        r.ParentID.Value,
	}
}

// OptionalID tells an absent id apart from an explicit null.
type OptionalID struct {
	Set   bool
	Value *uint
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var id uint
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}
