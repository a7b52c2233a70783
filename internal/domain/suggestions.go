package domain

import (
	"encoding/json"
	"strings"
)

// AISuggestions is the loosely-typed enrichment payload produced by the
// suggestion service. Any field may be absent; zero values mean "nothing
// to merge" and the reducer treats them as no-ops.
type AISuggestions struct {
	TripBlurb          string             `json:"trip_blurb"`
	VenueBagPolicyTips TaskList           `json:"venue_bag_policy_tips"`
	ExtraToDos         TaskList           `json:"extra_to_dos"`
	PackingAdditions   TaskList           `json:"packing_additions"`
	OverpackAdditions  OverpackAdditions  `json:"overpack_additions"`
	TimelineAdditions  []TimelineAddition `json:"timeline_additions"`
	SmartMustHaves     TaskList           `json:"smart_must_haves"`
}

// OverpackAdditions mirrors the three overpack advisory lists.
type OverpackAdditions struct {
	Skip       TaskList `json:"skip"`
	LastMinute TaskList `json:"lastMinute"`
	HousePrep  TaskList `json:"housePrep"`
}

// TimelineAddition is one day bucket of suggested tasks.
type TimelineAddition struct {
	Day   string   `json:"day"`
	Tasks TaskList `json:"tasks"`
}

// TaskList decodes either a JSON array of strings or a single string.
// Models occasionally emit a scalar where an array was asked for, or the
// wrong type entirely; decoding never fails so one bad field cannot
// reject the payload around it. Wrong-typed values decode as nil and
// non-string array elements are dropped.
type TaskList []string

func (l *TaskList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			*l = nil
			return nil
		}
		out := make(TaskList, 0, len(items))
		for _, raw := range items {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			*l = nil
			return nil
		}
		*l = out
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil || single == "" {
		*l = nil
		return nil
	}
	*l = TaskList{single}
	return nil
}
