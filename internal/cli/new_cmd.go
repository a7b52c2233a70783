package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fulfilled/tripprep/internal/airports"
	"github.com/fulfilled/tripprep/internal/cli/formatter"
	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/places"
	"github.com/fulfilled/tripprep/internal/plan"
)

func newNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Build a plan through an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("new requires an interactive terminal; use `tripprep plan FILE` instead")
			}

			ctx := context.Background()
			out := cmd.OutOrStdout()

			trip, hotelName, err := runTripWizard(ctx, app)
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
				return err
			}

			if app.Weather != nil {
				fetch, err := formConfirm("Fetch a weather outlook for these dates?", true)
				if err != nil {
					return err
				}
				if fetch {
					attachWeather(ctx, cmd, app, &trip)
				}
			}

			p, err := plan.Build(trip)
			if err != nil {
				return err
			}

			if app.Suggest != nil && app.Suggest.Enabled() {
				ask, err := formConfirm("Ask for AI suggestions?", true)
				if err != nil {
					return err
				}
				if ask {
					p = enrichPlan(ctx, cmd, app, trip, p)
				}
			}

			if hotelName != "" {
				fmt.Fprintf(out, "%s %s\n\n", formatter.Bold("Hotel:"), hotelName)
			}
			fmt.Fprintln(out, formatter.FormatPlan(p))

			save, err := formConfirm("Save this plan?", true)
			if err != nil {
				return err
			}
			if save {
				id, err := app.Plans.Save(ctx, trip, p)
				if err != nil {
					return fmt.Errorf("saving plan: %w", err)
				}
				fmt.Fprintf(out, "Saved plan %s\n", id)
			}
			return nil
		},
	}
}

// runTripWizard collects a TripInput field by field. The hotel name is
// returned separately: it assists the form but is not part of the plan
// rules, so it is echoed rather than stored.
func runTripWizard(ctx context.Context, app *App) (domain.TripInput, string, error) {
	var trip domain.TripInput

	dest, err := askDestination(ctx, app)
	if err != nil {
		return trip, "", err
	}
	trip.Destination = dest

	var modes []string
	var tripType, stay string
	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("2026-09-15").
				Value(&trip.StartDate).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (blank for a one-day trip)").
				Value(&trip.EndDate).
				Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("How are you getting there?").
				Options(
					huh.NewOption("Flying", "fly"),
					huh.NewOption("Driving", "drive"),
					huh.NewOption("Cruise", "cruise"),
					huh.NewOption("Day trip", "day_trip"),
				).
				Validate(func(picked []string) error {
					if len(picked) == 0 {
						return fmt.Errorf("pick at least one")
					}
					return nil
				}).
				Value(&modes),
			huh.NewSelect[string]().
				Title("Trip type").
				Options(
					huh.NewOption("Personal", "personal"),
					huh.NewOption("Work", "work"),
					huh.NewOption("Both", "both"),
				).
				Value(&tripType),
			huh.NewSelect[string]().
				Title("Where are you staying?").
				Options(
					huh.NewOption("Hotel", "hotel"),
					huh.NewOption("Family / friends", "family"),
					huh.NewOption("Rental", "rental"),
					huh.NewOption("Not sure yet", ""),
				).
				Value(&stay),
			huh.NewInput().
				Title("Getting around (optional)").
				Placeholder("rental car / subway & train / walking").
				Value(&trip.Transportation),
		),
		huh.NewGroup(
			huh.NewMultiSelect[domain.Activity]().
				Title("What's on the agenda?").
				Options(activityOptions()...).
				Value(&trip.Activities),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Traveling solo?").Value(&trip.Flags.TravelingSolo),
			huh.NewConfirm().Title("Single parent on this trip?").Value(&trip.Flags.SingleParent),
			huh.NewConfirm().Title("Traveling with friends?").Value(&trip.Flags.TravelingWithFriends),
		),
	)
	if err := form.Run(); err != nil {
		return trip, "", err
	}

	for _, m := range modes {
		trip.Modes = append(trip.Modes, domain.TravelMode(m))
	}
	trip.TripType = domain.TripType(tripType)
	trip.Accommodation = domain.Accommodation(stay)

	travelers, err := askTravelers()
	if err != nil {
		return trip, "", err
	}
	trip.Travelers = travelers

	if trip.HasMode(domain.ModeFly) {
		airport, err := askAirport()
		if err != nil {
			return trip, "", err
		}
		if airport != "" {
			trip.Logistics.Fly = &domain.FlyLogistics{DepartureAirport: airport}
		}
	}

	var hotelName string
	if trip.Accommodation == domain.StayHotel {
		hotelName, err = askHotelName(ctx, app, trip.Destination)
		if err != nil {
			return trip, "", err
		}
	}

	return trip, hotelName, nil
}

// askDestination takes a typed destination and, when the place lookup is
// configured, offers matching places to pick from.
func askDestination(ctx context.Context, app *App) (string, error) {
	var typed string
	form := newForm(huh.NewGroup(
		huh.NewInput().
			Title("Where are you headed?").
			Placeholder("Lisbon, Portugal").
			Value(&typed).
			Validate(validateRequired),
	))
	if err := form.Run(); err != nil {
		return "", err
	}

	if app.Places == nil {
		return typed, nil
	}
	suggestions, err := app.Places.Suggest(ctx, typed)
	if err != nil || len(suggestions) == 0 {
		return typed, nil
	}

	options := []huh.Option[string]{
		huh.NewOption(fmt.Sprintf("Keep as typed: %s", typed), typed),
	}
	for _, s := range suggestions {
		options = append(options, huh.NewOption(s.Label, s.Label))
	}

	choice := typed
	pick := newForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Did you mean one of these?").
			Options(options...).
			Value(&choice),
	))
	if err := pick.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// askTravelers collects travelers one at a time until the user stops.
func askTravelers() ([]domain.Traveler, error) {
	var travelers []domain.Traveler
	for {
		var name, travelerType, age string
		form := newForm(huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Traveler %d name (blank for a generated label)", len(travelers)+1)).
				Value(&name),
			huh.NewSelect[string]().
				Title("Adult or child?").
				Options(
					huh.NewOption("Adult", "adult"),
					huh.NewOption("Child", "child"),
				).
				Value(&travelerType),
			huh.NewInput().
				Title("Age in years (blank if unknown)").
				Value(&age).
				Validate(validateOptionalAge),
		))
		if err := form.Run(); err != nil {
			return nil, err
		}

		t := domain.Traveler{Name: strings.TrimSpace(name), Type: domain.TravelerType(travelerType)}
		if age != "" {
			years, _ := strconv.Atoi(age)
			t.Age = domain.AgeOf(years)
		}
		travelers = append(travelers, t)

		more, err := formConfirm("Add another traveler?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return travelers, nil
		}
	}
}

// askAirport searches the airport catalog for the typed query and offers
// the matches alongside the raw query.
func askAirport() (string, error) {
	var query string
	form := newForm(huh.NewGroup(
		huh.NewInput().
			Title("Departure airport (name, city, or code; blank to skip)").
			Placeholder("SEA").
			Value(&query),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil
	}

	matches := airports.Search(query)
	if len(matches) == 0 {
		return query, nil
	}

	options := []huh.Option[string]{
		huh.NewOption(fmt.Sprintf("Keep as typed: %s", query), query),
	}
	for _, a := range matches {
		options = append(options, huh.NewOption(a.Label(), a.IATA))
	}

	choice := query
	pick := newForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick your airport").
			Options(options...).
			Value(&choice),
	))
	if err := pick.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// askHotelName completes a partially typed hotel name, preferring the AI
// completion when it is enabled and falling back to the offline variant
// generator otherwise.
func askHotelName(ctx context.Context, app *App, destination string) (string, error) {
	var partial string
	form := newForm(huh.NewGroup(
		huh.NewInput().
			Title("Hotel name (blank to skip)").
			Value(&partial),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return "", nil
	}

	var variants []string
	if app.Suggest != nil && app.Suggest.Enabled() {
		variants, _ = app.Suggest.HotelNameVariants(ctx, partial, destination)
	}
	if len(variants) == 0 {
		variants = places.HotelNameVariants(partial)
	}
	if len(variants) == 0 {
		return partial, nil
	}

	options := []huh.Option[string]{
		huh.NewOption(fmt.Sprintf("Keep as typed: %s", partial), partial),
	}
	for _, v := range variants {
		options = append(options, huh.NewOption(v, v))
	}

	choice := partial
	pick := newForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick the full hotel name").
			Options(options...).
			Value(&choice),
	))
	if err := pick.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func activityOptions() []huh.Option[domain.Activity] {
	all := []domain.Activity{
		domain.ActivityLotsOfWalking,
		domain.ActivityFancyDinner,
		domain.ActivityBeach,
		domain.ActivityPool,
		domain.ActivityHiking,
		domain.ActivityBoatingSnorkeling,
		domain.ActivitySkiingSnow,
		domain.ActivityFishing,
		domain.ActivityCamping,
		domain.ActivitySportsEvent,
		domain.ActivityConcertShow,
		domain.ActivityMuseumsTours,
		domain.ActivityThemePark,
	}
	options := make([]huh.Option[domain.Activity], 0, len(all))
	for _, a := range all {
		options = append(options, huh.NewOption(a.Label(), a))
	}
	return options
}
