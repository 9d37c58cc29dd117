package models

import "time"

// SourceOfDiscovery records how a participant heard about the event.
type SourceOfDiscovery string

const (
	SourceSocialMedia SourceOfDiscovery = "Social media"
	SourceFriends     SourceOfDiscovery = "Friends"
	SourceFoundMyself SourceOfDiscovery = "Found myself"
)

// Sources lists every accepted discovery source.
var Sources = []SourceOfDiscovery{SourceSocialMedia, SourceFriends, SourceFoundMyself}

func (s SourceOfDiscovery) Valid() bool {
	for _, v := range Sources {
		if s == v {
			return true
		}
	}
	return false
}

type Participant struct {
	Base
	FullName    string            `json:"fullName" gorm:"type:varchar(255)"`
	Email       string            `json:"email" gorm:"type:varchar(255);index"`
	DateOfBirth time.Time         `json:"dateOfBirth"`
	Source      SourceOfDiscovery `json:"sourceOfEventDiscovery" gorm:"column:source_of_event_discovery;type:varchar(32)"`
	EventID     string            `json:"eventId" gorm:"type:char(36);index"`
	Event       Event             `json:"-" gorm:"foreignKey:EventID"`
}

func (Participant) TableName() string { return "participants" }
