package models

import "time"

// Problem statuses.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Problem is the D1/D2 record that owns a forest of causes.
type Problem struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title" validate:"notblank"`
	Description     string    `gorm:"type:text;not null" json:"description" validate:"notblank"`
	ResponsibleTeam string    `gorm:"type:varchar(255);not null" json:"responsible_team" validate:"notblank"`
	Status          string    `gorm:"type:varchar(16);not null;default:open;index" json:"status" validate:"oneof=open closed"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Problem) TableName() string {
	return "problems"
}
