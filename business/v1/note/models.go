package note

import (
	"github.com/google/uuid"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Note struct {
	Id        uuid.UUID `json:"id" example:"018f3a6e-7c1a-7b3e-9d2f-5c8e1a2b3c4d"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	Category  string    `json:"category" example:"work"`
	Published bool      `json:"published" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

// NewNote is the body of a create request, category defaults to ""
type NewNote struct {
	Title    string `json:"title" binding:"required" example:"my note"`
	Content  string `json:"content" binding:"required" example:"my note content"`
	Category string `json:"category" example:"work"`
}

// UpdateNote is the body of an update request, a nil field keeps the stored value
type UpdateNote struct {
	Title     *string `json:"title" example:"my note"`
	Content   *string `json:"content" example:"my note content"`
	Category  *string `json:"category" example:"work"`
	Published *bool   `json:"published" example:"true"`
}

// Filter is the query of a list request, nil fields take the defaults
type Filter struct {
	Page  *int `form:"page" binding:"omitempty,min=1"`
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

// Event is a note operation travelling through the messaging topic
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Edit is the data of an update event
type Edit struct {
	Id uuid.UUID `json:"id"`
	UpdateNote
}

// Ref is the data of a delete event
type Ref struct {
	Id uuid.UUID `json:"id"`
}
