package places

import "strings"

const maxHotelVariants = 6

// hotelSuffixes are appended to a bare property name, most common first.
var hotelSuffixes = []string{"Hotel", "Inn", "Resort", "Suites", "Lodge"}

// HotelNameVariants expands a partially typed hotel name into plausible
// full names. It is the offline fallback for the trip form when AI
// completion is unavailable; with no network it can only guess common
// property-type suffixes.
func HotelNameVariants(partial string) []string {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return nil
	}

	lower := strings.ToLower(partial)
	variants := []string{partial}
	for _, suffix := range hotelSuffixes {
		if strings.Contains(lower, strings.ToLower(suffix)) {
			continue
		}
		variants = append(variants, partial+" "+suffix)
		if len(variants) == maxHotelVariants {
			break
		}
	}
	return variants
}
