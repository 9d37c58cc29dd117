package participant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/testutil"
)

func newFixture(t *testing.T) (*Service, *gorm.DB, *models.Event) {
	t.Helper()
	db := testutil.NewDB(t)
	ev := &models.Event{Title: "Fixture Event", EventDate: time.Now()}
	if err := db.Create(ev).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	return NewService(db), db, ev
}

func TestCreateRegistersParticipant(t *testing.T) {
	svc, _, ev := newFixture(t)

	p, err := svc.Create(context.Background(), ev.ID, &CreateParticipantDTO{
		FullName:    "Dana Example",
		Email:       "dana@example.com",
		DateOfBirth: "1991-04-20",
		Source:      "Friends",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.EventID != ev.ID {
		t.Errorf("EventID = %q, want %q", p.EventID, ev.ID)
	}
	if p.Source != models.SourceFriends {
		t.Errorf("Source = %q", p.Source)
	}
}

func TestCreateUnknownEvent(t *testing.T) {
	svc, _, _ := newFixture(t)
	_, err := svc.Create(context.Background(), "missing", &CreateParticipantDTO{
		FullName: "X", Email: "x@example.com", DateOfBirth: "1990-01-01", Source: "Friends",
	})
	if !errors.Is(err, errEventNotFound) {
		t.Fatalf("err = %v, want errEventNotFound", err)
	}
}

func TestCreateInvalidSource(t *testing.T) {
	svc, _, ev := newFixture(t)
	_, err := svc.Create(context.Background(), ev.ID, &CreateParticipantDTO{
		FullName: "X", Email: "x@example.com", DateOfBirth: "1990-01-01", Source: "Carrier pigeon",
	})
	if !errors.Is(err, errInvalidSource) {
		t.Fatalf("err = %v, want errInvalidSource", err)
	}
}

func TestRegistrationsPerDayGroupsAndOrders(t *testing.T) {
	svc, db, ev := newFixture(t)

	days := map[string]int{
		"2024-02-01": 3,
		"2024-01-15": 2,
		"2024-03-10": 1,
	}
	for day, n := range days {
		d, _ := time.Parse("2006-01-02", day)
		for i := 0; i < n; i++ {
			p := models.Participant{
				Base:     models.Base{CreatedAt: d.Add(time.Duration(i) * time.Hour)},
				FullName: "P", Email: "p@example.com",
				Source: models.SourceFriends, EventID: ev.ID,
			}
			if err := db.Create(&p).Error; err != nil {
				t.Fatalf("create participant: %v", err)
			}
		}
	}

	rows, err := svc.RegistrationsPerDay(context.Background(), ev.ID)
	if err != nil {
		t.Fatalf("RegistrationsPerDay: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3: %+v", len(rows), rows)
	}

	wantOrder := []string{"2024-01-15", "2024-02-01", "2024-03-10"}
	for i, day := range wantOrder {
		if rows[i].Date != day {
			t.Errorf("rows[%d].Date = %q, want %q", i, rows[i].Date, day)
		}
		if rows[i].Count != days[day] {
			t.Errorf("rows[%d].Count = %d, want %d", i, rows[i].Count, days[day])
		}
	}
}

func TestRegistrationsPerDayUnknownEvent(t *testing.T) {
	svc, _, _ := newFixture(t)
	_, err := svc.RegistrationsPerDay(context.Background(), "missing")
	if !errors.Is(err, errEventNotFound) {
		t.Fatalf("err = %v, want errEventNotFound", err)
	}
}

func TestGenerateFakeProperties(t *testing.T) {
	svc, db, ev := newFixture(t)

	if err := svc.GenerateFake(context.Background(), ev, 25); err != nil {
		t.Fatalf("GenerateFake: %v", err)
	}

	var batch []models.Participant
	if err := db.Where("event_id = ?", ev.ID).Find(&batch).Error; err != nil {
		t.Fatalf("load participants: %v", err)
	}
	if len(batch) != 25 {
		t.Fatalf("count = %d, want 25", len(batch))
	}

	spreadStart := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	fixedDOB := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range batch {
		if !p.DateOfBirth.Equal(fixedDOB) {
			t.Errorf("DateOfBirth = %v, want fixed 1990-01-01", p.DateOfBirth)
		}
		if !p.Source.Valid() {
			t.Errorf("invalid source %q", p.Source)
		}
		if p.CreatedAt.Before(spreadStart) || p.CreatedAt.After(time.Now()) {
			t.Errorf("CreatedAt = %v outside expected spread", p.CreatedAt)
		}
		if p.FullName == "" || !strings.Contains(p.Email, "@") {
			t.Errorf("implausible identity fields: %+v", p)
		}
	}
}
