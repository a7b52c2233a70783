package plan

import "github.com/fulfilled/tripprep/internal/domain"

// overpackCtx selects the variant advisory groups. Children and
// adults-only are mutually exclusive; at most one accommodation group
// applies.
type overpackCtx struct {
	hasChildren   bool
	work          bool
	solo          bool
	accommodation domain.Accommodation
}

func baseOverpack() Overpack {
	return Overpack{
		Skip: []string{
			"Full-size toiletries (buy small or use what's there)",
			"More than 2 pairs of shoes",
			"\"Just in case\" outfits beyond one spare",
			"Books you won't finish (load an e-reader instead)",
		},
		LastMinute: []string{
			"Phone chargers",
			"Toothbrushes",
			"Refrigerated medications",
			"Sunglasses",
			"Water bottles (fill after security)",
		},
		HousePrep: []string{
			"Take out trash and clear perishables from the fridge",
			"Run or empty the dishwasher",
			"Set thermostat to away mode",
			"Hold mail or ask a neighbor to collect it",
			"Water plants",
			"Lock all windows and doors",
		},
	}
}

// buildOverpack composes the advisory lists: base first, then the
// applicable variant groups in fixed priority order, de-duplicated.
func buildOverpack(ctx overpackCtx) Overpack {
	out := baseOverpack()

	if ctx.hasChildren {
		out.Skip = appendUnique(out.Skip, "Too many toys (pick 2-3 favorites)")
		out.LastMinute = appendUnique(out.LastMinute,
			"Favorite stuffed animal / lovey",
			"Refill the wipes container",
		)
	} else {
		out.Skip = appendUnique(out.Skip, "Extra \"options\" outfits you won't wear")
	}

	if ctx.work {
		out.LastMinute = appendUnique(out.LastMinute,
			"Laptop and charger",
			"Work badge",
		)
	}

	if ctx.solo {
		out.LastMinute = appendUnique(out.LastMinute, "Print a contact card in case your phone dies")
		out.HousePrep = appendUnique(out.HousePrep, "Share your itinerary with someone you trust")
	}

	switch ctx.accommodation {
	case domain.StayHotel:
		out.Skip = appendUnique(out.Skip,
			"Towels (hotel provides)",
			"Hair dryer (hotel provides)",
		)
	case domain.StayFamily:
		out.LastMinute = appendUnique(out.LastMinute, "Host thank-you gift")
	case domain.StayRental:
		out.LastMinute = appendUnique(out.LastMinute, "Grocery list for arrival day")
		out.HousePrep = appendUnique(out.HousePrep, "Screenshot the rental's check-in instructions")
	}

	return out
}
