package labs

import "sort"

// FindDuplicates groups results by (test_name, date) and returns the
// groups spanning more than one distinct source. Results with an unknown
// date are excluded. Groups come back newest first, then by test name.
func FindDuplicates(results []*LabResult) []DuplicateGroup {
	type key struct{ test, date string }
	byKey := make(map[key][]*LabResult)
	for _, r := range results {
		if r.Date == "" {
			continue
		}
		k := key{r.TestName, r.Date}
		byKey[k] = append(byKey[k], r)
	}

	var groups []DuplicateGroup
	for k, records := range byKey {
		sources := make(map[string]bool)
		for _, r := range records {
			sources[r.Source] = true
		}
		if len(sources) < 2 {
			continue
		}

		sort.Slice(records, func(i, j int) bool { return records[i].Source < records[j].Source })

		match := true
		for _, r := range records[1:] {
			if r.Value != records[0].Value {
				match = false
				break
			}
		}
		groups = append(groups, DuplicateGroup{
			TestName:   k.test,
			Date:       k.date,
			Records:    records,
			ValueMatch: match,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Date != groups[j].Date {
			return groups[i].Date > groups[j].Date
		}
		return groups[i].TestName < groups[j].TestName
	})
	return groups
}
