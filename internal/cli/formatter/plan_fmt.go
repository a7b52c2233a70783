package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/plan"
	"github.com/fulfilled/tripprep/internal/store"
)

// FormatPlan renders a full plan for terminal display.
func FormatPlan(p *plan.Plan) string {
	sections := []string{basicsBox(p)}

	if p.Blurb != "" {
		sections = append(sections, Dim(p.Blurb))
	}
	if s := weatherSection(p.Weather); s != "" {
		sections = append(sections, s)
	}
	if s := timelineSection(p.Timeline); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, packingSection(p.Packing))
	sections = append(sections, overpackSection(p.Overpack))
	if p.Lodging != nil && len(p.Lodging.InfantToddler) > 0 {
		sections = append(sections, listSection("Lodging: infant & toddler", p.Lodging.InfantToddler))
	}
	if len(p.VenueTips) > 0 {
		sections = append(sections, listSection("Venue tips", p.VenueTips))
	}
	if len(p.ExtraToDos) > 0 {
		sections = append(sections, listSection("Extra to-dos", p.ExtraToDos))
	}
	if len(p.SmartMustHaves) > 0 {
		sections = append(sections, listSection("Smart must-haves", p.SmartMustHaves))
	}

	return strings.Join(sections, "\n\n")
}

// FormatSavedHeader renders the stored-plan identity line shown above a
// saved plan.
func FormatSavedHeader(id string, createdAt time.Time) string {
	return fmt.Sprintf("%s %s %s",
		Bold("Plan"), id, Dim("saved "+createdAt.Local().Format("Jan 2, 2006 15:04")))
}

// FormatPlanList renders saved-plan summaries as a table.
func FormatPlanList(summaries []store.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			TruncID(s.ID),
			s.Destination,
			HumanDate(s.StartDate),
			s.CreatedAt.Local().Format("Jan 2, 2006"),
		})
	}
	return RenderTable([]string{"ID", "Destination", "Start", "Saved"}, rows)
}

func basicsBox(p *plan.Plan) string {
	b := p.Basics

	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s", Bold("Dates"), DateRangeLabel(b.Dates.Start, b.Dates.End)))
	lines = append(lines, fmt.Sprintf("%s  %s", Bold("Who"), travelersLine(b.Travelers)))
	if len(b.Modes) > 0 {
		lines = append(lines, fmt.Sprintf("%s  %s", Bold("Travel"), strings.Join(b.Modes, ", ")))
	}
	if b.Accommodation != "" {
		lines = append(lines, fmt.Sprintf("%s  %s", Bold("Stay"), b.Accommodation))
	}
	if b.Transportation != "" {
		lines = append(lines, fmt.Sprintf("%s  %s", Bold("Around"), b.Transportation))
	}
	if len(p.Activities) > 0 {
		lines = append(lines, fmt.Sprintf("%s  %s", Bold("Doing"), strings.Join(p.Activities, ", ")))
	}

	return RenderBox(b.Destination, strings.Join(lines, "\n"))
}

func travelersLine(t plan.TravelerSummary) string {
	parts := []string{plural(t.Adults, "adult")}
	if t.Children > 0 {
		child := plural(t.Children, "child")
		if t.Children > 1 {
			child = fmt.Sprintf("%d children", t.Children)
		}
		if len(t.AgesChildren) > 0 {
			ages := make([]string, len(t.AgesChildren))
			for i, a := range t.AgesChildren {
				ages[i] = fmt.Sprintf("%d", a)
			}
			child += fmt.Sprintf(" (ages %s)", strings.Join(ages, ", "))
		}
		parts = append(parts, child)
	}
	line := strings.Join(parts, ", ")
	if len(t.Names) > 0 {
		line += " " + Dim("("+strings.Join(t.Names, ", ")+")")
	}
	return line
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func weatherSection(w domain.WeatherSummary) string {
	var parts []string
	if w.AvgHighF != nil {
		parts = append(parts, fmt.Sprintf("High %.0f°F", *w.AvgHighF))
	}
	if w.AvgLowF != nil {
		parts = append(parts, fmt.Sprintf("Low %.0f°F", *w.AvgLowF))
	}
	if w.WetDaysPct != nil {
		parts = append(parts, fmt.Sprintf("%.0f%% wet days", *w.WetDaysPct))
	}
	if len(parts) == 0 && w.Notes == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(Header("Weather"))
	if len(parts) > 0 {
		b.WriteString("\n" + strings.Join(parts, Dim(" · ")))
	}
	if w.Notes != "" {
		b.WriteString("\n" + w.Notes)
	}
	if w.MatchedLocation != "" {
		b.WriteString("\n" + Dim(w.MatchedLocation))
	}
	return b.String()
}

func timelineSection(entries []plan.TimelineEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(Header("Countdown"))
	for _, e := range entries {
		b.WriteString("\n" + DayBadge(e.Day))
		for _, task := range e.Tasks {
			b.WriteString("\n  " + Dim("•") + " " + task)
		}
	}
	return b.String()
}

// packingSection renders the combined list then each traveler's list.
// Essentials are starred; the star legend sits under the header.
func packingSection(packing plan.Packing) string {
	var b strings.Builder
	b.WriteString(Header("Packing"))
	b.WriteString("\n" + Dim("* = essential (minimalist list)"))

	b.WriteString("\n\n" + Bold("Everyone"))
	b.WriteString("\n" + starredList(packing.Combined, packing.MinimalCombined))

	for _, person := range packing.PersonOrder {
		b.WriteString("\n\n" + Bold(person))
		b.WriteString("\n" + starredList(packing.ByPerson[person], packing.MinimalByPerson[person]))
	}
	return b.String()
}

func starredList(full, minimal []string) string {
	essentials := make(map[string]bool, len(minimal))
	for _, item := range minimal {
		essentials[item] = true
	}
	labeled := make([]string, len(full))
	for i, item := range full {
		if essentials[item] {
			labeled[i] = Essential(item)
		} else {
			labeled[i] = item
		}
	}
	return BulletList(labeled)
}

func overpackSection(o plan.Overpack) string {
	var b strings.Builder
	b.WriteString(Header("Pack smarter"))
	b.WriteString("\n" + Bold("Skip these") + "\n" + BulletList(o.Skip))
	b.WriteString("\n\n" + Bold("Last-minute grabs") + "\n" + BulletList(o.LastMinute))
	b.WriteString("\n\n" + Bold("House prep") + "\n" + BulletList(o.HousePrep))
	return b.String()
}

func listSection(title string, items []string) string {
	return Header(title) + "\n" + BulletList(items)
}
