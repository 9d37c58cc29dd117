package event

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/pkg/validate"
)

// imageCreator stores image rows for external image links.
type imageCreator interface {
	CreateWithLinks(ctx context.Context, links []string) ([]models.Image, error)
}

// participantGenerator fabricates attendees for an imported event.
type participantGenerator interface {
	GenerateFake(ctx context.Context, event *models.Event, count int) error
}

// Report sums up one import run. Records are handled independently, a
// failing record never aborts the batch.
type Report struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Importer pulls external events into the local catalog.
type Importer struct {
	svc          *Service
	client       *TicketmasterClient
	images       imageCreator
	participants participantGenerator
	validator    validate.Validator
	ownerID      string
	log          *zap.Logger
}

func NewImporter(svc *Service, client *TicketmasterClient, images imageCreator, participants participantGenerator, ownerID string, log *zap.Logger) *Importer {
	return &Importer{
		svc:          svc,
		client:       client,
		images:       images,
		participants: participants,
		validator:    validate.New(),
		ownerID:      ownerID,
		log:          log,
	}
}

// Run performs one import cycle. The upstream call failing fails the run,
// anything after that is handled per record.
func (im *Importer) Run(ctx context.Context) (Report, error) {
	events, err := im.client.FetchEvents(ctx)
	if err != nil {
		return Report{}, err
	}
	if events == nil {
		im.log.Warn("no events found")
		return Report{}, nil
	}

	var report Report
	for i := range events {
		switch err := im.importOne(ctx, &events[i]); {
		case err == nil:
			report.Created++
		case errors.Is(err, errAlreadyImported):
			report.Skipped++
		default:
			report.Failed++
			im.log.Error("import event failed",
				zap.String("external_id", events[i].ID),
				zap.Error(err),
			)
		}
	}

	im.log.Info("import run finished",
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

var errAlreadyImported = errors.New("event already imported")

func (im *Importer) importOne(ctx context.Context, src *tmEvent) error {
	exists, err := im.svc.Exists(ctx, src.ID)
	if err != nil {
		return err
	}
	if exists {
		return errAlreadyImported
	}

	eventDate, err := time.Parse(time.RFC3339, src.Dates.Start.DateTime)
	if err != nil {
		im.log.Warn("invalid event dateTime, using current date",
			zap.String("external_id", src.ID),
			zap.String("date_time", src.Dates.Start.DateTime),
		)
		eventDate = time.Now()
	}

	var links []string
	for _, attraction := range src.Embedded.Attractions {
		if img, ok := maxHeightImage(attraction.Images); ok {
			links = append(links, img.URL)
		}
	}
	images, err := im.images.CreateWithLinks(ctx, links)
	if err != nil {
		return err
	}

	organizer := src.Name
	var latitude, longitude float64
	if len(src.Embedded.Venues) > 0 {
		venue := src.Embedded.Venues[0]
		if venue.Name != "" {
			organizer = venue.Name
		}
		latitude, _ = strconv.ParseFloat(venue.Location.Latitude, 64)
		longitude, _ = strconv.ParseFloat(venue.Location.Longitude, 64)
	}

	ev := models.Event{
		Base:        models.Base{ID: src.ID},
		Title:       src.Name,
		Description: buildDescription(src),
		EventDate:   eventDate,
		Organizer:   organizer,
		Latitude:    latitude,
		Longitude:   longitude,
		Images:      images,
		CreatedByID: &im.ownerID,
	}
	if err := im.validator.Struct(&ev); err != nil {
		return err
	}
	if err := im.svc.CreateImported(ctx, &ev); err != nil {
		// A concurrent run inserted the same external id first, which is
		// equivalent to the existence check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errAlreadyImported
		}
		return err
	}

	return im.participants.GenerateFake(ctx, &ev, 20+rand.IntN(80))
}
