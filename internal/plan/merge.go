package plan

import (
	"strings"

	"github.com/fulfilled/tripprep/internal/domain"
)

// MergeSuggestions folds an AI suggestion payload into the plan and
// returns the enriched copy. The input plan is never modified. Absent or
// empty suggestion fields are no-ops; the merge only ever adds, so every
// list in the result is a superset of the input's.
func MergeSuggestions(p *Plan, s domain.AISuggestions) *Plan {
	out := p.Clone()

	if blurb := strings.TrimSpace(s.TripBlurb); blurb != "" {
		out.Blurb = blurb
	}
	out.VenueTips = appendUnique(out.VenueTips, s.VenueBagPolicyTips...)
	out.ExtraToDos = appendUnique(out.ExtraToDos, s.ExtraToDos...)
	out.SmartMustHaves = appendUnique(out.SmartMustHaves, s.SmartMustHaves...)

	// Packing additions apply to everyone: the combined list and each
	// per-person list. They are not flagged essential, so the minimal
	// lists stay untouched.
	if len(s.PackingAdditions) > 0 {
		out.Packing.Combined = appendUnique(out.Packing.Combined, s.PackingAdditions...)
		for name, list := range out.Packing.ByPerson {
			out.Packing.ByPerson[name] = appendUnique(list, s.PackingAdditions...)
		}
	}

	out.Overpack.Skip = appendUnique(out.Overpack.Skip, s.OverpackAdditions.Skip...)
	out.Overpack.LastMinute = appendUnique(out.Overpack.LastMinute, s.OverpackAdditions.LastMinute...)
	out.Overpack.HousePrep = appendUnique(out.Overpack.HousePrep, s.OverpackAdditions.HousePrep...)

	if len(s.TimelineAdditions) > 0 {
		additions := make([]TimelineEntry, 0, len(s.TimelineAdditions))
		for _, a := range s.TimelineAdditions {
			additions = append(additions, TimelineEntry{Day: strings.TrimSpace(a.Day), Tasks: a.Tasks})
		}
		out.Timeline = mergeTimeline(out.Timeline, additions)
	}

	return out
}
