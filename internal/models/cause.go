package models

import (
	"strings"
	"time"
)

// Cause is one "why" in a problem's root-cause analysis. ParentID nil marks a
// top-level cause. Deleting a cause removes its whole subtree.
type Cause struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProblemID       uint      `gorm:"not null;index:idx_root_causes_problem_order,priority:1" json:"problem_id" validate:"required"`
	ParentID        *uint     `gorm:"index" json:"parent_id"`
	CauseText       string    `gorm:"type:text;not null" json:"cause_text" validate:"notblank"`
	IsRootCause     bool      `gorm:"not null;default:false" json:"is_root_cause"`
	PermanentAction *string   `gorm:"type:text" json:"permanent_action"`
	OrderIndex      int       `gorm:"not null;default:0;index:idx_root_causes_problem_order,priority:2" json:"order_index"`
	CreatedAt       time.Time `gorm:"index:idx_root_causes_problem_order,priority:3" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Problem *Problem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Parent  *Cause   `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Cause) TableName() string {
	return "root_causes"
}

// HasPermanentAction reports whether a non-blank corrective action is recorded.
func (c *Cause) HasPermanentAction() bool {
	return c.PermanentAction != nil && strings.TrimSpace(*c.PermanentAction) != ""
}

// IsTopLevel reports whether the cause is a "why #1" node.
func (c *Cause) IsTopLevel() bool {
	return c.ParentID == nil
}

// CauseNode is a cause with its nested children. Children is never nil so it
// always serializes as a JSON array.
type CauseNode struct {
	Cause
	Children []*CauseNode `json:"children"`
}

// TreeStats summarizes a cause forest.
type TreeStats struct {
	Nodes      int `json:"nodes"`
	RootCauses int `json:"root_causes"`
	MaxDepth   int `json:"max_depth"`
}
