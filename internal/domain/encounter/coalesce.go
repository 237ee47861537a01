package encounter

import (
	"sort"

	"github.com/chartfold/chartfold/internal/platform/dates"
)

// Coalesce groups encounters from different sources that likely describe
// the same visit. Encounters with an unknown date are skipped. Only groups
// spanning more than one distinct source are returned.
//
// With toleranceDays 0, grouping is strictly by identical date. With a
// positive tolerance, distinct dates are swept in ascending order: a group
// is seeded at the earliest unconsumed date and absorbs each later
// unconsumed date within the tolerance that contributes at least one
// source not already present in the group. The absorbed date is then
// consumed. This is a single forward sweep, not transitive-closure
// clustering; when overlapping windows compete, the earliest seed wins.
func Coalesce(encounters []*Encounter, toleranceDays int) []Group {
	byDate := make(map[string][]*Encounter)
	for _, e := range encounters {
		if e.Date == "" {
			continue
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	dateKeys := make([]string, 0, len(byDate))
	for d := range byDate {
		dateKeys = append(dateKeys, d)
	}
	sort.Strings(dateKeys)

	var groups []Group
	if toleranceDays <= 0 {
		for _, d := range dateKeys {
			if g, ok := buildGroup(d, byDate[d]); ok {
				groups = append(groups, g)
			}
		}
		return groups
	}

	consumed := make(map[string]bool)
	for i, seed := range dateKeys {
		if consumed[seed] {
			continue
		}
		members := append([]*Encounter(nil), byDate[seed]...)
		seen := sourceSet(byDate[seed])

		for _, later := range dateKeys[i+1:] {
			if consumed[later] {
				continue
			}
			gap, ok := dates.DaysBetween(seed, later)
			if !ok || gap > toleranceDays {
				continue
			}
			// Absorb only dates that bring a new source. A date that
			// merely repeats an already-seen source stays available as
			// a seed for its own group.
			if !addsNewSource(byDate[later], seen) {
				continue
			}
			members = append(members, byDate[later]...)
			for _, e := range byDate[later] {
				seen[e.Source] = true
			}
			consumed[later] = true
		}
		consumed[seed] = true

		if g, ok := buildGroup(seed, members); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

func buildGroup(date string, members []*Encounter) (Group, bool) {
	seen := sourceSet(members)
	if len(seen) < 2 {
		return Group{}, false
	}
	sources := make([]string, 0, len(seen))
	for s := range seen {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return Group{Date: date, Sources: sources, Encounters: members}, true
}

func sourceSet(members []*Encounter) map[string]bool {
	set := make(map[string]bool, len(members))
	for _, e := range members {
		set[e.Source] = true
	}
	return set
}

func addsNewSource(members []*Encounter, seen map[string]bool) bool {
	for _, e := range members {
		if !seen[e.Source] {
			return true
		}
	}
	return false
}
