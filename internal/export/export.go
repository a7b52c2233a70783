// Package export renders a built plan as calendar and task files the
// user can import elsewhere.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/fulfilled/tripprep/internal/plan"
)

const dateLayout = "2006-01-02"

// dayOffset maps a canonical day label to its offset in days before the
// trip start. Free-form labels have no date and are not exportable.
func dayOffset(day string) (int, bool) {
	if day == "Day of" {
		return 0, true
	}
	if n, ok := strings.CutPrefix(day, "T-"); ok {
		if d, err := strconv.Atoi(n); err == nil && d > 0 {
			return d, true
		}
	}
	return 0, false
}

func dueDate(start time.Time, day string) (time.Time, bool) {
	offset, ok := dayOffset(day)
	if !ok {
		return time.Time{}, false
	}
	return start.AddDate(0, 0, -offset), true
}

// ICS renders the timeline as an iCalendar document with one all-day
// event per dated bucket. Buckets with free-form day labels are skipped
// since they have no computable date.
func ICS(p *plan.Plan) (string, error) {
	start, err := time.Parse(dateLayout, p.Basics.Dates.Start)
	if err != nil {
		return "", fmt.Errorf("parsing trip start date %q: %w", p.Basics.Dates.Start, err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tripprep//trip prep timeline//EN")

	now := time.Now().UTC()
	for _, entry := range p.Timeline {
		date, ok := dueDate(start, entry.Day)
		if !ok {
			continue
		}
		event := cal.AddEvent(uuid.NewString() + "@tripprep")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s - Trip prep for %s", entry.Day, p.Basics.Destination))
		event.SetDescription(strings.Join(entry.Tasks, "\n"))
	}

	return cal.Serialize(), nil
}

// CSV renders every timeline task plus the smart must-haves as
// Google-Tasks-style rows (Task, Notes, Due Date). Tasks on free-form
// days export with an empty due date.
func CSV(p *plan.Plan) (string, error) {
	start, err := time.Parse(dateLayout, p.Basics.Dates.Start)
	if err != nil {
		return "", fmt.Errorf("parsing trip start date %q: %w", p.Basics.Dates.Start, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Task", "Notes", "Due Date"}); err != nil {
		return "", err
	}

	notes := "Trip prep: " + p.Basics.Destination
	for _, entry := range p.Timeline {
		due := ""
		if date, ok := dueDate(start, entry.Day); ok {
			due = date.Format(dateLayout)
		}
		for _, task := range entry.Tasks {
			if err := w.Write([]string{task, notes + " (" + entry.Day + ")", due}); err != nil {
				return "", err
			}
		}
	}
	for _, item := range p.SmartMustHaves {
		if err := w.Write([]string{"Pack: " + item, "Must-have", start.Format(dateLayout)}); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}
