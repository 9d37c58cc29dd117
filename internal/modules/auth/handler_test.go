package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/middleware"
	"github.com/eventmaster/core/internal/models"
	sessionpkg "github.com/eventmaster/core/internal/pkg/session"
	"github.com/eventmaster/core/internal/pkg/token"
	"github.com/eventmaster/core/internal/testutil"
)

const cookieName = "SESSION_ID"

func newAuthApp(t *testing.T) (*gin.Engine, *gorm.DB, *sessionpkg.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	for _, kind := range []models.RoleKind{models.RoleAdmin, models.RoleUser} {
		if err := db.Create(&models.Role{Kind: kind}).Error; err != nil {
			t.Fatalf("seed role: %v", err)
		}
	}

	codec, err := token.NewCodec("secret", "abcdefghijklmnopqrstuvwxyz0123456789", 32)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	store := sessionpkg.NewStore(db, codec, 7*24*time.Hour)

	r := gin.New()
	h := NewHandler(NewService(db, store), CookieOptions{Name: cookieName})
	h.RegisterRoutes(r.Group(""), middleware.Auth(store, cookieName))
	return r, db, store
}

func createUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()
	var role models.Role
	if err := db.Where("kind = ?", models.RoleUser).First(&role).Error; err != nil {
		t.Fatalf("load role: %v", err)
	}
	u := &models.User{Email: email, Password: password, Roles: []models.Role{role}}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func postJSON(r *gin.Engine, path, body string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r, db, _ := newAuthApp(t)
	createUser(t, db, "alice@example.com", "hunter2hunter2")

	w := postJSON(r, "/login", `{"email":"alice@example.com","password":"hunter2hunter2"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	c := sessionCookie(t, w)
	if c == nil {
		t.Fatal("no session cookie set")
	}
	if !c.HttpOnly {
		t.Error("cookie not HttpOnly")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite = %v, want strict", c.SameSite)
	}
	wantExpiry := time.Now().Add(7 * 24 * time.Hour)
	if diff := c.Expires.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cookie Expires = %v, want about %v", c.Expires, wantExpiry)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, db, _ := newAuthApp(t)
	createUser(t, db, "alice@example.com", "hunter2hunter2")

	w := postJSON(r, "/login", `{"email":"alice@example.com","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if sessionCookie(t, w) != nil {
		t.Fatal("cookie set on failed login")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _, _ := newAuthApp(t)
	w := postJSON(r, "/login", `{"email":"ghost@example.com","password":"whatever"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	r, db, store := newAuthApp(t)
	u := createUser(t, db, "alice@example.com", "hunter2hunter2")

	sess, err := store.Create(context.Background(), u.ID, "127.0.0.1")
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}

	w := postJSON(r, "/logout", "", sess.Token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204, body %s", w.Code, w.Body.String())
	}

	c := sessionCookie(t, w)
	if c == nil || c.MaxAge != -1 {
		t.Fatal("logout did not clear the cookie")
	}

	// the server side row is gone, the token cannot be replayed
	got, err := store.FindByToken(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("FindByToken: %v", err)
	}
	if got != nil {
		t.Fatal("session still resolvable after logout")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	r, _, _ := newAuthApp(t)
	w := postJSON(r, "/logout", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRegisterAndDuplicate(t *testing.T) {
	r, _, _ := newAuthApp(t)

	w := postJSON(r, "/register", `{"email":"new@example.com","password":"longenough"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/register", `{"email":"new@example.com","password":"longenough"}`, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	r, _, _ := newAuthApp(t)
	w := postJSON(r, "/register", `{"email":"not-an-email","password":"short"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
