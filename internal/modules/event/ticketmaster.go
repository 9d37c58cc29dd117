package event

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// TicketmasterClient fetches events from the Discovery API.
type TicketmasterClient struct {
	baseURL     string
	apiKey      string
	countryCode string
	pageSize    int
	httpClient  *http.Client
}

func NewTicketmasterClient(baseURL, apiKey, countryCode string, pageSize int) *TicketmasterClient {
	return &TicketmasterClient{
		baseURL:     baseURL,
		apiKey:      apiKey,
		countryCode: countryCode,
		pageSize:    pageSize,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Discovery API payload. Only the fields the importer reads are declared.

type tmEnvelope struct {
	Embedded *struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
}

type tmEvent struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Dates           tmDates            `json:"dates"`
	Classifications []tmClassification `json:"classifications"`
	Embedded        struct {
		Venues      []tmVenue      `json:"venues"`
		Attractions []tmAttraction `json:"attractions"`
	} `json:"_embedded"`
}

type tmDates struct {
	Start struct {
		DateTime  string `json:"dateTime"`
		LocalDate string `json:"localDate"`
		LocalTime string `json:"localTime"`
	} `json:"start"`
	Status struct {
		Code string `json:"code"`
	} `json:"status"`
}

type tmClassification struct {
	Segment  tmNamed `json:"segment"`
	Genre    tmNamed `json:"genre"`
	SubGenre tmNamed `json:"subGenre"`
}

type tmNamed struct {
	Name string `json:"name"`
}

type tmVenue struct {
	Name    string `json:"name"`
	Address struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	City       tmNamed `json:"city"`
	State      tmNamed `json:"state"`
	PostalCode string  `json:"postalCode"`
	Country    tmNamed `json:"country"`
	Location   struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
}

type tmAttraction struct {
	Images []tmImage `json:"images"`
}

type tmImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
}

// FetchEvents pulls one page of events. A missing events collection is
// not an error, the caller decides how to report it.
func (c *TicketmasterClient) FetchEvents(ctx context.Context) ([]tmEvent, error) {
	q := url.Values{}
	q.Set("countryCode", c.countryCode)
	q.Set("size", fmt.Sprintf("%d", c.pageSize))
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events.json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("ticketmaster returned status %d", resp.StatusCode)
	}

	var envelope tmEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode ticketmaster response: %w", err)
	}
	if envelope.Embedded == nil {
		return nil, nil
	}
	return envelope.Embedded.Events, nil
}
