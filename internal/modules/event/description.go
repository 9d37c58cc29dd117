package event

import "fmt"

// buildDescription renders the imported event description from the
// upstream classification, schedule and venue fields. The output format
// is stable because the client renders it as markup.
func buildDescription(ev *tmEvent) string {
	var typ string
	if len(ev.Classifications) > 0 {
		c := ev.Classifications[0]
		typ = fmt.Sprintf("%s - %s (%s)", c.Segment.Name, c.Genre.Name, c.SubGenre.Name)
	}

	date := ev.Dates.Start.LocalDate
	if date == "" {
		date = "Unknown Date"
	}
	tm := ev.Dates.Start.LocalTime
	if tm == "" {
		tm = "Unknown Time"
	}

	var venue tmVenue
	if len(ev.Embedded.Venues) > 0 {
		venue = ev.Embedded.Venues[0]
	}

	return fmt.Sprintf(
		"**Event Type:** %s<br />"+
			"**Date and Time:** %s at %s<br />"+
			"**Event Status:** %s<br />"+
			"**Venue:** %s, %s, %s, %s, %s, %s",
		typ, date, tm, ev.Dates.Status.Code,
		venue.Name, venue.Address.Line1, venue.City.Name,
		venue.State.Name, venue.PostalCode, venue.Country.Name,
	)
}

// maxHeightImage returns the image with the greatest height. Ties keep
// the earliest element, matching a left fold with a strict comparison.
func maxHeightImage(images []tmImage) (tmImage, bool) {
	if len(images) == 0 {
		return tmImage{}, false
	}
	best := images[0]
	for _, img := range images[1:] {
		if img.Height > best.Height {
			best = img
		}
	}
	return best, true
}
