package models

import "time"

// Event is a single listing. Imported events keep the upstream identifier
// as their primary key, which doubles as the idempotency guard for the
// import job.
type Event struct {
	Base
	Title       string    `json:"title" gorm:"type:varchar(512)" validate:"required"`
	Description string    `json:"description" gorm:"type:text"`
	EventDate   time.Time `json:"eventDate" gorm:"index" validate:"required"`
	Organizer   string    `json:"organizer" gorm:"type:varchar(255);index"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`

	Images []Image `json:"images" gorm:"many2many:event_images"`

	CreatedByID *string `json:"-" gorm:"type:char(36);index"`
	CreatedBy   *User   `json:"user,omitempty" gorm:"foreignKey:CreatedByID"`

	Participants []Participant `json:"-" gorm:"foreignKey:EventID"`
}

func (Event) TableName() string { return "events" }
