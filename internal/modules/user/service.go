package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/pkg/pagination"
	"github.com/eventmaster/core/internal/pkg/response"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(ctx context.Context, q pagination.Query) ([]models.User, response.Pagination, error) {
	tx := s.db.WithContext(ctx).Model(&models.User{}).Preload("Roles").Order("created_at DESC")
	var items []models.User
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Preload("Roles").First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errUserNotFound
	}
	return nil
}
