// Package session persists login sessions and issues their tokens.
package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/pkg/token"
	"github.com/eventmaster/core/internal/pkg/validate"
)

var ErrUserNotFound = errors.New("session: user not found")

// Store creates, resolves and revokes sessions against the database.
type Store struct {
	db    *gorm.DB
	codec *token.Codec
	ttl   time.Duration
	v     validate.Validator
}

func NewStore(db *gorm.DB, codec *token.Codec, ttl time.Duration) *Store {
	return &Store{db: db, codec: codec, ttl: ttl, v: validate.New()}
}

// Create mints a token and stores a session for the given user. The user
// must exist.
func (s *Store) Create(ctx context.Context, userID, ip string) (*models.Session, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}

	tok, err := s.codec.Generate()
	if err != nil {
		return nil, err
	}
	sess := &models.Session{
		Token:     tok,
		UserID:    userID,
		IP:        ip,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.v.Struct(sess); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// FindByToken resolves a token to its session with the owning user and
// roles loaded. Tokens that fail the checksum are rejected without a
// query. Returns (nil, nil) when no session matches.
func (s *Store) FindByToken(ctx context.Context, tok string) (*models.Session, error) {
	if !s.codec.Validate(tok) {
		return nil, nil
	}
	var sess models.Session
	err := s.db.WithContext(ctx).
		Preload("User.Roles").
		Preload("User").
		Where("token = ?", tok).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete revokes the session holding the given token. Deleting a token
// with no session is not an error.
func (s *Store) Delete(ctx context.Context, tok string) error {
	return s.db.WithContext(ctx).Where("token = ?", tok).Delete(&models.Session{}).Error
}

// Expire moves the session's expiry into the past, forcing the next
// lookup through the guard to fail.
func (s *Store) Expire(ctx context.Context, tok string) error {
	return s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token = ?", tok).
		Update("expires_at", time.Now().Add(-time.Minute)).Error
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration { return s.ttl }

// Codec exposes the token codec, mainly for minting test tokens.
func (s *Store) Codec() *token.Codec { return s.codec }
