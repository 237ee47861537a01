package pathology

import (
	"regexp"
	"strings"
)

// Sections is the structured content pulled out of free pathology text.
type Sections struct {
	Diagnosis              string `json:"diagnosis"`
	GrossDescription       string `json:"gross_description"`
	MicroscopicDescription string `json:"microscopic_description"`
	Staging                string `json:"staging"`
	Margins                string `json:"margins"`
	LymphNodes             string `json:"lymph_nodes"`
	Specimen               string `json:"specimen"`
}

// sectionRule bounds a narrative section: text after the first matching
// start pattern, up to the nearest matching end pattern.
type sectionRule struct {
	starts []*regexp.Regexp
	ends   []*regexp.Regexp
}

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

var (
	diagnosisRule = sectionRule{
		starts: compileAll(
			`(?:Final\s+)?Diagnosis[:\s]*`,
			`Pathologic\s+Diagnosis[:\s]*`,
		),
		ends: compileAll(
			`Gross\s+Description`,
			`Microscopic`,
			`Comment[:\s]`,
			`Clinical\s+Information`,
			`By\s+this\s+signature`,
			`Report\s+Electronically`,
			`\b[a-z]{2,4}/\b`, // transcriptionist initials like "gp/"
		),
	}
	grossRule = sectionRule{
		starts: compileAll(`Gross\s+Description[:\s]*`),
		ends: compileAll(
			`Microscopic\s+Description`,
			`Microscopic`,
			`Comment[:\s]`,
			`By\s+this\s+signature`,
			`PA\(s\):`,
			`\b[a-z]{2,4}/\b`,
		),
	}
	microRule = sectionRule{
		starts: compileAll(`Microscopic\s+Description[:\s]*`, `Microscopic[:\s]*`),
		ends: compileAll(
			`Comment[:\s]`,
			`By\s+this\s+signature`,
			`Addendum`,
			`(?:Final\s+)?Diagnosis[:\s]`,
		),
	}

	// Single-match field patterns, tried in priority order; first hit wins.
	// The N-suffix class excludes m: under case-insensitive matching a
	// plain [a-z]? would swallow the "M" of the M stage and truncate
	// "pT3N1M0" to "pT3N1M".
	stagingPatterns = compileAll(
		`(pT\d[a-z]?N\d[a-ln-z]?(?:M\d)?)`,
		`Stage\s+(I{1,3}V?[A-C]?)\b`,
		`AJCC\s+Stage[:\s]*(.*?)(?:\.|$)`,
	)
	marginPatterns = compileAll(
		`(?:surgical\s+)?margins?[:\s]*(.*?)(?:\.|;|$)`,
		`(?:Positive|Negative|Close)\s+(?:deep\s+)?(?:radial\s+)?margins?`,
		`margins?\s+(?:are\s+)?(?:positive|negative|close|free|involved)`,
	)
	lymphNodePatterns = compileAll(
		`(\d+)\s*/\s*(\d+)\s+(?:lymph\s+)?(?:node|LN)s?\s+(?:positive|involved|with\s+(?:metasta|tumor))`,
		`(?:lymph\s+)?(?:node|LN)s?[:\s]*(\d+)\s*/\s*(\d+)\s+positive`,
		`(?:positive|negative)\s+(?:lymph\s+)?(?:node|LN)s?`,
	)
	specimenPatterns = compileAll(
		`Specimen[:\s]*"?(.*?)"?(?:\.|$)`,
		`Received[:\s]*(.*?)(?:\.|$)`,
		`Labeled[:\s]*"(.*?)"`,
	)
)

// ParseSections splits free pathology report text into structured
// sections. Missing sections come back empty; the function never errors.
func ParseSections(text string) Sections {
	if text == "" {
		return Sections{}
	}
	return Sections{
		Diagnosis:              diagnosisRule.extract(text),
		GrossDescription:       grossRule.extract(text),
		MicroscopicDescription: microRule.extract(text),
		Staging:                firstGroup(stagingPatterns, text),
		Margins:                firstMatch(marginPatterns, text),
		LymphNodes:             firstMatch(lymphNodePatterns, text),
		Specimen:               firstGroup(specimenPatterns, text),
	}
}

func (r sectionRule) extract(text string) string {
	for _, start := range r.starts {
		loc := start.FindStringIndex(text)
		if loc == nil {
			continue
		}
		rest := text[loc[1]:]
		end := len(rest)
		for _, endPat := range r.ends {
			if eloc := endPat.FindStringIndex(rest); eloc != nil && eloc[0] < end {
				end = eloc[0]
			}
		}
		return strings.TrimSpace(rest[:end])
	}
	return ""
}

// firstGroup returns the first capture group of the first pattern that
// matches; falls back to the whole match when the pattern has no group.
func firstGroup(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

// firstMatch returns the whole text of the first pattern that matches.
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

