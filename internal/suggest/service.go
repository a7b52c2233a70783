package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/llm"
	"github.com/fulfilled/tripprep/internal/plan"
)

// Producer-side caps on suggestion list sizes. The merge reducer applies
// no caps of its own, so oversized model output is truncated here.
const (
	maxListItems        = 6
	maxTimelineDays     = 5
	maxSmartMustHaves   = 30
	maxHotelVariants    = 6
	maxTimelineDayTasks = 6
)

// Service produces AI enrichment for a built plan. A failed or disabled
// call leaves the rule-based plan as the final answer; callers skip the
// merge rather than retry.
type Service interface {
	// Suggest asks the model for plan additions.
	Suggest(ctx context.Context, in domain.TripInput, p *plan.Plan) (domain.AISuggestions, error)

	// HotelNameVariants completes a partially typed hotel name.
	HotelNameVariants(ctx context.Context, partial, destination string) ([]string, error)

	// Enabled reports whether suggestion calls can be made at all.
	Enabled() bool
}

type service struct {
	client llm.Client
}

// NewService creates a Service backed by the given completion client.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Enabled() bool {
	return s.client.Enabled()
}

func (s *service) Suggest(ctx context.Context, in domain.TripInput, p *plan.Plan) (domain.AISuggestions, error) {
	in = domain.NormalizeTrip(in)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   buildSuggestUserPrompt(in, p),
	})
	if err != nil {
		return domain.AISuggestions{}, fmt.Errorf("generating suggestions: %w", err)
	}

	out, err := llm.ExtractJSON[domain.AISuggestions](resp.Text, nil)
	if err != nil {
		return domain.AISuggestions{}, err
	}
	return capSuggestions(out), nil
}

type hotelVariantsResponse struct {
	Variants []string `json:"variants"`
}

func (s *service) HotelNameVariants(ctx context.Context, partial, destination string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return nil, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskHotelNames,
		SystemPrompt: hotelNamesSystemPrompt,
		UserPrompt:   buildHotelNamesUserPrompt(partial, destination),
	})
	if err != nil {
		return nil, fmt.Errorf("generating hotel variants: %w", err)
	}

	out, err := llm.ExtractJSON[hotelVariantsResponse](resp.Text, nil)
	if err != nil {
		return nil, err
	}

	variants := lo.Filter(out.Variants, func(v string, _ int) bool {
		return strings.TrimSpace(v) != ""
	})
	return capList(variants, maxHotelVariants), nil
}

// capSuggestions enforces the producer-side size limits on every list the
// model returned.
func capSuggestions(s domain.AISuggestions) domain.AISuggestions {
	s.TripBlurb = strings.TrimSpace(s.TripBlurb)
	s.VenueBagPolicyTips = capList(cleanList(s.VenueBagPolicyTips), maxListItems)
	s.ExtraToDos = capList(cleanList(s.ExtraToDos), maxListItems)
	s.PackingAdditions = capList(cleanList(s.PackingAdditions), maxListItems)
	s.OverpackAdditions.Skip = capList(cleanList(s.OverpackAdditions.Skip), maxListItems)
	s.OverpackAdditions.LastMinute = capList(cleanList(s.OverpackAdditions.LastMinute), maxListItems)
	s.OverpackAdditions.HousePrep = capList(cleanList(s.OverpackAdditions.HousePrep), maxListItems)
	s.SmartMustHaves = capList(cleanList(s.SmartMustHaves), maxSmartMustHaves)

	var days []domain.TimelineAddition
	for _, a := range s.TimelineAdditions {
		tasks := capList(cleanList(a.Tasks), maxTimelineDayTasks)
		if strings.TrimSpace(a.Day) == "" || len(tasks) == 0 {
			continue
		}
		days = append(days, domain.TimelineAddition{Day: strings.TrimSpace(a.Day), Tasks: tasks})
		if len(days) == maxTimelineDays {
			break
		}
	}
	s.TimelineAdditions = days
	return s
}

func cleanList(items []string) []string {
	return lo.FilterMap(items, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

func capList[S ~[]string](items S, max int) S {
	if len(items) > max {
		return items[:max]
	}
	return items
}
