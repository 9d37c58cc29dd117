package event

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

const (
	defaultLimit = 10
	maxLimit     = 100
)

// List returns a page of events with the total row count.
func (s *Service) List(ctx context.Context, q ListQuery) ([]models.Event, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "event_date"
	}
	direction := "ASC"
	if strings.EqualFold(q.SortOrder, "DESC") {
		direction = "DESC"
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Event
	err := s.db.WithContext(ctx).
		Preload("Images").
		Preload("CreatedBy").
		Order(fmt.Sprintf("%s %s", column, direction)).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&items).Error
	return items, total, err
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var ev models.Event
	err := s.db.WithContext(ctx).
		Preload("Images").
		Preload("CreatedBy").
		First(&ev, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Create persists a user created event. Every referenced image id must
// exist already, otherwise nothing is written.
func (s *Service) Create(ctx context.Context, dto *CreateEventDTO, creator *models.User) (*models.Event, error) {
	images, err := s.resolveImages(ctx, dto.Images)
	if err != nil {
		return nil, err
	}

	ev := models.Event{
		Title:       dto.Title,
		Description: dto.Description,
		EventDate:   dto.EventDate,
		Organizer:   creator.Email,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Images:      images,
		CreatedByID: &creator.ID,
	}
	if err := s.db.WithContext(ctx).Create(&ev).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, ev.ID)
}

// CreateImported inserts an event keeping its upstream identifier as the
// primary key. A duplicate key insert means another run won the race and
// surfaces as gorm.ErrDuplicatedKey.
func (s *Service) CreateImported(ctx context.Context, ev *models.Event) error {
	return s.db.WithContext(ctx).Create(ev).Error
}

// Exists reports whether an event with the given id is already stored.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateEventDTO, actor *models.User) (*models.Event, error) {
	ev, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, errEventNotFound
	}
	if !canModify(ev, actor) {
		return nil, errNotOwner
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.EventDate != nil {
		updates["event_date"] = *dto.EventDate
	}
	if dto.Latitude != nil {
		updates["latitude"] = *dto.Latitude
	}
	if dto.Longitude != nil {
		updates["longitude"] = *dto.Longitude
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(ev).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if dto.Images != nil {
		images, err := s.resolveImages(ctx, *dto.Images)
		if err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Model(ev).Association("Images").Replace(images); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string, actor *models.User) error {
	ev, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ev == nil {
		return errEventNotFound
	}
	if !canModify(ev, actor) {
		return errNotOwner
	}
	return s.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id).Error
}

// canModify allows the creating user and admins through. Imported events
// belong to the system user, so regular users cannot touch them.
func canModify(ev *models.Event, actor *models.User) bool {
	if actor == nil {
		return false
	}
	if actor.HasRole(models.RoleAdmin) {
		return true
	}
	return ev.CreatedByID != nil && *ev.CreatedByID == actor.ID
}

func (s *Service) resolveImages(ctx context.Context, ids []string) ([]models.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var images []models.Image
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&images).Error; err != nil {
		return nil, err
	}
	if len(images) != len(ids) {
		return nil, errImagesNotFound
	}
	return images, nil
}
