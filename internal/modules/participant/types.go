package participant

import (
	"errors"
)

type CreateParticipantDTO struct {
	FullName    string `json:"fullName" binding:"required,min=1,max=255"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Source      string `json:"sourceOfEventDiscovery" binding:"required"`
}

// RegistrationsPerDay is one point of the registrations chart.
type RegistrationsPerDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

var (
	errEventNotFound = errors.New("event not found")
	errInvalidSource = errors.New("invalid source of event discovery")
	errInvalidDate   = errors.New("invalid date of birth")
)
