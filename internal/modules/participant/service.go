package participant

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Create registers a participant for an event.
func (s *Service) Create(ctx context.Context, eventID string, dto *CreateParticipantDTO) (*models.Participant, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}

	source := models.SourceOfDiscovery(dto.Source)
	if !source.Valid() {
		return nil, errInvalidSource
	}
	dob, err := time.Parse("2006-01-02", dto.DateOfBirth)
	if err != nil {
		return nil, errInvalidDate
	}

	p := models.Participant{
		FullName:    dto.FullName,
		Email:       dto.Email,
		DateOfBirth: dob,
		Source:      source,
		EventID:     eventID,
	}
	return &p, s.db.WithContext(ctx).Create(&p).Error
}

// ListByEvent returns every participant registered for the event.
func (s *Service) ListByEvent(ctx context.Context, eventID string) ([]models.Participant, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}
	var items []models.Participant
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&items).Error
	return items, err
}

// RegistrationsPerDay groups registrations by calendar day, oldest first.
func (s *Service) RegistrationsPerDay(ctx context.Context, eventID string) ([]RegistrationsPerDay, error) {
	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}

	rows := make([]RegistrationsPerDay, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Participant{}).
		Select("DATE(created_at) AS date, COUNT(id) AS count").
		Where("event_id = ?", eventID).
		Group("DATE(created_at)").
		Order("date").
		Scan(&rows).Error
	return rows, err
}

// GenerateFake fabricates attendees for an imported event. Their
// registration timestamps are spread over the past so the per-day chart
// has something to show.
func (s *Service) GenerateFake(ctx context.Context, event *models.Event, count int) error {
	if count <= 0 {
		return nil
	}

	spreadStart := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	fixedDOB := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

	batch := make([]models.Participant, count)
	for i := range batch {
		batch[i] = models.Participant{
			Base: models.Base{
				ID:        uuid.NewString(),
				CreatedAt: gofakeit.DateRange(spreadStart, time.Now()),
			},
			FullName:    gofakeit.Name(),
			Email:       gofakeit.Email(),
			DateOfBirth: fixedDOB,
			Source:      models.Sources[rand.IntN(len(models.Sources))],
			EventID:     event.ID,
		}
	}
	return s.db.WithContext(ctx).CreateInBatches(batch, 100).Error
}

func (s *Service) ensureEvent(ctx context.Context, eventID string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errEventNotFound
	}
	return nil
}
