package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/eventmaster/core/internal/config"
	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	root := config.RootAdmin{Email: "root@example.com", Password: "rootpassword"}

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, db, zap.NewNop(), root); err != nil {
			t.Fatalf("Seed run %d: %v", i+1, err)
		}
	}

	var roles int64
	db.Model(&models.Role{}).Count(&roles)
	if roles != 2 {
		t.Fatalf("roles = %d, want 2", roles)
	}

	var users int64
	db.Model(&models.User{}).Count(&users)
	if users != 2 {
		t.Fatalf("users = %d, want root admin plus system user", users)
	}

	var admin models.User
	if err := db.Preload("Roles").Where("email = ?", root.Email).First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if !admin.HasRole(models.RoleAdmin) {
		t.Fatal("bootstrap admin lacks admin role")
	}
	if admin.Password == "rootpassword" {
		t.Fatal("admin password stored in plain text")
	}

	if _, err := SystemUserID(ctx, db); err != nil {
		t.Fatalf("SystemUserID: %v", err)
	}
}
