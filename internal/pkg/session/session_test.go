package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/pkg/token"
	"github.com/eventmaster/core/internal/pkg/validate"
	"github.com/eventmaster/core/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, *models.User) {
	t.Helper()
	db := testutil.NewDB(t)
	codec, err := token.NewCodec("secret", "abcdefghijklmnopqrstuvwxyz0123456789", 32)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	user := &models.User{Email: "alice@example.com", Password: "pw123456"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return NewStore(db, codec, 7*24*time.Hour), user
}

func TestCreateAndResolve(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()

	before := time.Now()
	sess, err := store.Create(ctx, user.ID, "127.0.0.1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("session has empty token")
	}

	wantExpiry := before.Add(7 * 24 * time.Hour)
	if diff := sess.ExpiresAt.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("ExpiresAt = %v, want about %v", sess.ExpiresAt, wantExpiry)
	}

	got, err := store.FindByToken(ctx, sess.Token)
	if err != nil {
		t.Fatalf("FindByToken: %v", err)
	}
	if got == nil {
		t.Fatal("FindByToken returned nil for a live session")
	}
	if got.UserID != user.ID {
		t.Fatalf("UserID = %s, want %s", got.UserID, user.ID)
	}
	if got.User.Email != user.Email {
		t.Fatalf("preloaded user email = %q, want %q", got.User.Email, user.Email)
	}
}

func TestCreateUnknownUser(t *testing.T) {
	store, _ := newTestStore(t)
	if _, err := store.Create(context.Background(), "no-such-id", "127.0.0.1"); err != ErrUserNotFound {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCreateRejectsEmptyIP(t *testing.T) {
	store, user := newTestStore(t)

	_, err := store.Create(context.Background(), user.ID, "")
	var viol validate.Violations
	if !errors.As(err, &viol) {
		t.Fatalf("err = %v, want validate.Violations", err)
	}
	if len(viol) != 1 || viol[0].Field != "ip" {
		t.Fatalf("violations = %+v, want one on ip", viol)
	}
}

func TestFindByTokenRejectsMalformed(t *testing.T) {
	store, _ := newTestStore(t)
	got, err := store.FindByToken(context.Background(), "not a real token")
	if err != nil {
		t.Fatalf("FindByToken: %v", err)
	}
	if got != nil {
		t.Fatal("malformed token resolved to a session")
	}
}

func TestFindByTokenUnknown(t *testing.T) {
	store, _ := newTestStore(t)
	tok, err := store.codec.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got, err := store.FindByToken(context.Background(), tok)
	if err != nil {
		t.Fatalf("FindByToken: %v", err)
	}
	if got != nil {
		t.Fatal("unknown token resolved to a session")
	}
}

func TestDeleteRevokes(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, user.ID, "127.0.0.1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Delete(ctx, sess.Token); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := store.FindByToken(ctx, sess.Token)
	if err != nil {
		t.Fatalf("FindByToken: %v", err)
	}
	if got != nil {
		t.Fatal("deleted session still resolvable")
	}

	// deleting again is a no-op
	if err := store.Delete(ctx, sess.Token); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}
