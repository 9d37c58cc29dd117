package event

import (
	"errors"
	"time"

	"github.com/eventmaster/core/internal/models"
)

type CreateEventDTO struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Images      []string  `json:"images"`
}

type UpdateEventDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"eventDate"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Images      *[]string  `json:"images"`
}

// ListQuery holds the parsed query parameters of the event listing.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// listResponse is the envelope of GET /events.
type listResponse struct {
	Events     []models.Event `json:"events"`
	TotalCount int64          `json:"totalCount"`
}

var (
	errEventNotFound  = errors.New("event not found")
	errImagesNotFound = errors.New("not all requested images were found")
	errNotOwner       = errors.New("only the event owner may modify it")
)

// sortColumns whitelists sortable fields against their columns. Anything
// else falls back to the event date.
var sortColumns = map[string]string{
	"title":     "title",
	"eventDate": "event_date",
	"organizer": "organizer",
}
