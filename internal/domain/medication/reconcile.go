package medication

import (
	"sort"
	"strings"
)

// Stem is the crude cross-source grouping key for a medication name: the
// lower-cased first whitespace-delimited token. Known limitation, kept
// deliberately: unrelated drugs sharing a leading word (combination
// products, salt forms spelled as separate words) land in one group. The
// discrepancy view exposes the raw rows so such conflations are visible.
func Stem(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Reconcile groups medications by stem and builds the cross-source view.
// A group is active when any member's status equals "active"
// case-insensitively; it is a discrepancy when members carry more than one
// distinct status. Output is ordered by stem for stable responses.
func Reconcile(meds []*Medication) Reconciliation {
	byStem := make(map[string][]*Medication)
	var stems []string
	for _, m := range meds {
		key := Stem(m.Name)
		if _, seen := byStem[key]; !seen {
			stems = append(stems, key)
		}
		byStem[key] = append(byStem[key], m)
	}
	sort.Strings(stems)

	var rec Reconciliation
	for _, key := range stems {
		entries := byStem[key]

		statusSet := make(map[string]bool)
		sourceSet := make(map[string]bool)
		for _, e := range entries {
			statusSet[strings.ToLower(e.Status)] = true
			sourceSet[e.Source] = true
		}

		if statusSet["active"] {
			rec.Active = append(rec.Active, ActiveEntry{
				Name:     entries[0].Name,
				Sources:  sortedKeys(sourceSet),
				Statuses: sortedKeys(statusSet),
			})
		}
		if len(statusSet) > 1 {
			rec.Discrepancies = append(rec.Discrepancies, Discrepancy{
				Name:    entries[0].Name,
				Entries: entries,
			})
		}
	}
	return rec
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
