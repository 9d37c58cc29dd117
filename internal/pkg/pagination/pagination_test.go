package pagination

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/testutil"
)

func TestFromContextClampsValues(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		page  int
		limit int
	}{
		{"", 1, 10},
		{"?page=3&limit=25", 3, 25},
		{"?page=-1&limit=0", 1, 10},
		{"?page=abc&limit=xyz", 1, 10},
		{"?limit=5000", 1, MaxLimit},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/"+tc.query, nil)
		q := FromContext(c)
		if q.Page != tc.page || q.Limit != tc.limit {
			t.Errorf("query %q: got page=%d limit=%d, want page=%d limit=%d",
				tc.query, q.Page, q.Limit, tc.page, tc.limit)
		}
	}
}

func TestPaginate(t *testing.T) {
	db := testutil.NewDB(t)
	for i := 0; i < 25; i++ {
		ev := models.Event{Title: fmt.Sprintf("ev-%02d", i), EventDate: time.Now()}
		if err := db.Create(&ev).Error; err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	var items []models.Event
	pag, err := Paginate(db.Model(&models.Event{}).Order("title"), Query{Page: 2, Limit: 10}, &items)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if pag.Total != 25 || pag.TotalPage != 3 || !pag.HasNextPage {
		t.Fatalf("pagination = %+v", pag)
	}
	if len(items) != 10 {
		t.Fatalf("len(items) = %d, want 10", len(items))
	}
	if items[0].Title != "ev-10" {
		t.Fatalf("first item = %q, want ev-10", items[0].Title)
	}
}
