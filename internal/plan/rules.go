package plan

import (
	"strings"

	"github.com/fulfilled/tripprep/internal/domain"
)

// Weather thresholds are fixed business rules, not configuration.
const (
	hotHighF      = 80.0
	coldLowF      = 45.0
	wetDaysPctMin = 30.0
)

// baseCommonItems go on every traveler's list regardless of trip shape.
func baseCommonItems() []packItem {
	return []packItem{
		essential("Photo ID / Passports"),
		essential("Wallet & travel cards"),
		essential("Phone & charger"),
		essential("Medications + mini first-aid"),
		essential("Toiletries (toothbrush, travel-size liquids)"),
		essential("Sleepwear, underwear, socks"),
		essential("Outfits for each day + 1 spare"),
	}
}

// activityItems maps each activity tag to its packing additions.
var activityItems = map[domain.Activity][]packItem{
	domain.ActivityLotsOfWalking: {
		essential("Comfortable walking shoes"),
		item("Blister bandages"),
	},
	domain.ActivityFancyDinner: {
		item("Nice outfit"),
		item("Dress shoes"),
		item("Restaurant reservation details"),
	},
	domain.ActivityBeach: {
		essential("Swimsuit"),
		item("Cover-up"),
		essential("Reef-safe sunscreen"),
		item("Flip-flops"),
	},
	domain.ActivityPool: {
		item("Swimsuit"),
		item("Goggles"),
		item("Swim diapers (if needed)"),
	},
	domain.ActivityHiking: {
		essential("Daypack"),
		essential("Reusable water bottle"),
		item("Bug spray"),
	},
	domain.ActivityBoatingSnorkeling: {
		item("Rash guard"),
		item("Snorkel set"),
		item("Dry bag"),
	},
	domain.ActivitySkiingSnow: {
		essential("Base layers"),
		essential("Gloves"),
		item("Beanie"),
		item("Hand warmers"),
	},
	domain.ActivityFishing: {
		item("Fishing license & tackle"),
		item("Quick-dry clothes"),
	},
	domain.ActivityCamping: {
		essential("Tent & sleeping bags"),
		essential("Headlamp / flashlight"),
		item("Camp stove & matches"),
	},
	domain.ActivitySportsEvent: {
		item("Clear stadium/park-approved bag"),
		item("Portable phone battery"),
	},
	domain.ActivityConcertShow: {
		item("Clear stadium/park-approved bag"),
		item("Earplugs"),
	},
	domain.ActivityMuseumsTours: {
		item("Tickets / tour confirmations"),
		item("Small notebook"),
	},
	domain.ActivityThemePark: {
		essential("Portable phone battery"),
		item("Cooling towel"),
		item("Clear stadium/park-approved bag"),
	},
}

// sunProtectionItems apply once any outdoor activity is selected,
// regardless of which one.
func sunProtectionItems() []packItem {
	return []packItem{
		essential("Sunscreen"),
		item("Sunglasses / sun hat"),
		item("SPF lip balm"),
	}
}

// lodgingItems returns accommodation-derived packing additions. Hotel and
// rental stays adjust the timeline and overpack lists instead.
func lodgingItems(a domain.Accommodation) []packItem {
	if a == domain.StayFamily {
		return []packItem{
			item("Small thank-you gift for host"),
			item("House slippers / comfy clothes"),
		}
	}
	return nil
}

// transportationItems derives packing additions from the getting-around
// string and the selected travel modes. An explicit drive mode counts as
// traveling by car even when the transportation field says otherwise.
func transportationItems(in domain.TripInput) []packItem {
	transport := strings.ToLower(in.Transportation)
	switch {
	case strings.Contains(transport, "subway") || strings.Contains(transport, "train"):
		return []packItem{
			item("Transit card/app set up"),
			item("Light day bag with zipper"),
		}
	case in.HasMode(domain.ModeDrive) || strings.Contains(transport, "car"):
		return []packItem{
			item("Car snacks"),
			item("Car phone mount"),
			item("Charging cable (car)"),
		}
	}
	return nil
}

// modeItems are additions shared by everyone on the trip for each
// selected travel mode.
func modeItems(in domain.TripInput) []packItem {
	var out []packItem
	if in.HasMode(domain.ModeFly) {
		out = append(out,
			essential("Download airline app"),
			item("Compression socks"),
		)
	}
	if in.HasMode(domain.ModeCruise) {
		out = append(out,
			essential("Cruise documents & boarding passes"),
			item("Lanyard for cruise card"),
			essential("Seasickness remedy"),
			item("Embarkation-day swim bag"),
		)
	}
	return out
}

// weatherItems derives additions from the weather summary thresholds.
// All weather-driven items are essential: they exist because conditions
// demand them.
func weatherItems(wx *domain.WeatherSummary) []packItem {
	if wx == nil {
		return nil
	}
	var out []packItem
	if wx.AvgHighF != nil && *wx.AvgHighF >= hotHighF {
		out = append(out,
			essential("Extra sunscreen"),
			essential("Hat / sunglasses"),
		)
	}
	if wx.AvgLowF != nil && *wx.AvgLowF <= coldLowF {
		out = append(out,
			essential("Warm jacket / layers"),
			essential("Gloves / scarf"),
		)
	}
	if wx.WetDaysPct != nil && *wx.WetDaysPct >= wetDaysPctMin {
		out = append(out, essential("Compact umbrella / rain jacket"))
	}
	return out
}

// childItems are additions for every child traveler; babyItems apply only
// when the age is known and at most three. An unknown age never triggers
// them.
func childItems() []packItem {
	return []packItem{
		essential("Favorite snack"),
		essential("Lightweight jacket / extra layer"),
		item("Entertainment (small toys, tablet & headphones)"),
	}
}

func babyItems() []packItem {
	return []packItem{
		essential("Diapers / wipes"),
		essential("Stroller"),
		item("Snack cups"),
		essential("Change of clothes (extra)"),
	}
}

// adultModeItems are per-adult additions derived from travel modes.
func adultModeItems(in domain.TripInput) []packItem {
	var out []packItem
	if in.HasMode(domain.ModeFly) {
		out = append(out,
			essential("TSA-size liquids"),
			item("Travel pillow (optional)"),
		)
	}
	if in.HasMode(domain.ModeCruise) {
		out = append(out,
			essential("Motion-sickness remedy"),
			item("Non-surge power strip"),
		)
	}
	return out
}

// workItems are per-adult additions for trips with a work component.
// The professional outfit is essential only on a pure work trip.
func workItems(tripType domain.TripType) []packItem {
	if !tripType.IsWork() {
		return nil
	}
	out := []packItem{
		essential("Laptop + charger"),
		essential("Work ID / badge"),
		{label: "Professional outfit", essential: tripType == domain.TripWork},
		item("Notebook & pen"),
	}
	if tripType == domain.TripWork {
		out = append(out, item("Business-card holder"))
	}
	return out
}

// soloItems apply when traveling alone.
func soloItems() []packItem {
	return []packItem{
		item("Personal safety alarm"),
		item("Portable door wedge"),
	}
}

// infantToddlerLodging is the sleep-setup checklist shown when an infant
// or toddler is on the trip.
func infantToddlerLodging() []string {
	return []string{
		"Crib/pack-n-play (confirm availability or bring travel crib)",
		"Blackout solution (travel curtains/tape)",
		"Sound machine / app",
		"Monitor (if needed)",
		"Favorite sleep sack / lovey",
	}
}
