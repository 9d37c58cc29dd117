package image

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
)

type Service struct {
	db        *gorm.DB
	staticDir string
	log       *zap.Logger
}

func NewService(db *gorm.DB, staticDir string, log *zap.Logger) *Service {
	return &Service{db: db, staticDir: staticDir, log: log}
}

// CreateWithLinks stores one image row per link. Blank links are skipped
// and a failing link is logged and skipped instead of failing the batch.
func (s *Service) CreateWithLinks(ctx context.Context, links []string) ([]models.Image, error) {
	created := make([]models.Image, 0, len(links))
	for _, link := range links {
		if strings.TrimSpace(link) == "" {
			continue
		}
		img := models.Image{Link: link}
		if err := s.db.WithContext(ctx).Create(&img).Error; err != nil {
			s.log.Error("create image with link failed", zap.String("link", link), zap.Error(err))
			continue
		}
		created = append(created, img)
	}
	return created, nil
}

// Upload persists an uploaded file. The row is written inside a
// transaction, the file lands on disk under a temporary name and is
// renamed to the row's id before the transaction commits. Any failure
// rolls everything back and removes the partial file.
func (s *Service) Upload(ctx context.Context, originalName string, data []byte) (*models.Image, error) {
	ext := filepath.Ext(originalName)

	var img models.Image
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		img = models.Image{FileName: originalName}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}

		link := "/" + img.ID + ext
		if err := tx.Model(&img).Update("link", link).Error; err != nil {
			return err
		}
		img.Link = link

		if err := os.MkdirAll(s.staticDir, 0o755); err != nil {
			return fmt.Errorf("create static dir: %w", err)
		}
		tmp := filepath.Join(s.staticDir, img.ID+ext+".tmp")
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("write file: %w", err)
		}
		if err := os.Rename(tmp, filepath.Join(s.staticDir, img.ID+ext)); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("move file into place: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("file uploaded", zap.String("id", img.ID), zap.String("link", img.Link))
	return &img, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Image, error) {
	var img models.Image
	err := s.db.WithContext(ctx).First(&img, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}
