package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"realestate-chat-api/pkg/models"
)

var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// KnownLocations returns the distinct lowercased locations of ds, sorted.
func KnownLocations(ds models.Dataset) []string {
	seen := make(map[string]bool)
	locations := make([]string, 0)
	for _, r := range ds {
		key := strings.ToLower(strings.TrimSpace(r.Location))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		locations = append(locations, key)
	}
	sort.Strings(locations)
	return locations
}

// wordGuard matches one character that cannot be part of a word. Any Unicode
// letter counts, so "puneé" is one word.
const wordGuard = `[^\p{L}\p{N}_]`

// LocationIndex matches known location names in query text.
// It is built once per loaded dataset and is safe for concurrent use.
type LocationIndex struct {
	known   []string
	pattern *regexp.Regexp
}

// NewLocationIndex normalizes known (lowercased, trimmed, deduplicated) and
// compiles the matcher.
func NewLocationIndex(known []string) *LocationIndex {
	seen := make(map[string]bool)
	names := make([]string, 0, len(known))
	for _, k := range known {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		names = append(names, k)
	}
	sort.Strings(names)
	return &LocationIndex{known: names, pattern: locationPattern(names)}
}

// Known returns the sorted location names of the index.
func (ix *LocationIndex) Known() []string {
	return ix.known
}

// Parse runs intent classification and entity extraction over one query.
func (ix *LocationIndex) Parse(text string) models.ParsedQuery {
	locations, years := ix.extract(text)
	return models.ParsedQuery{
		Intent:    ClassifyIntent(text),
		Locations: locations,
		Years:     years,
	}
}

func (ix *LocationIndex) extract(text string) (locations []string, years []int) {
	text = strings.ToLower(text)
	locations = make([]string, 0)

	if ix.pattern != nil {
		seen := make(map[string]bool)
		// 次の検索は地名の直後から始める（区切り文字を次の一致と共有するため）
		for pos := 0; pos < len(text); {
			m := ix.pattern.FindStringSubmatchIndex(text[pos:])
			if m == nil {
				break
			}
			name := text[pos+m[2] : pos+m[3]]
			if !seen[name] {
				seen[name] = true
				locations = append(locations, name)
			}
			pos += m[3]
		}
	}

	seenYears := make(map[int]bool)
	for _, m := range yearPattern.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil || seenYears[y] {
			continue
		}
		seenYears[y] = true
		years = append(years, y)
	}

	return locations, years
}

// ExtractEntities finds known locations (whole words) and 20xx years in text.
// Each location or year is reported once, in order of first appearance.
// years is nil when the text names no year.
func ExtractEntities(text string, known []string) (locations []string, years []int) {
	return NewLocationIndex(known).extract(text)
}

// locationPattern matches one of names between non-word characters, with
// longer names first so that "navi mumbai" wins over "mumbai" at the same
// position. The name itself is submatch 1.
func locationPattern(names []string) *regexp.Regexp {
	if len(names) == 0 {
		return nil
	}
	ordered := make([]string, len(names))
	copy(ordered, names)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	quoted := make([]string, len(ordered))
	for i, n := range ordered {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`(?:^|` + wordGuard + `)(` + strings.Join(quoted, "|") + `)(?:$|` + wordGuard + `)`)
}

// ClassifyIntent maps query text to an intent. First matching rule wins.
func ClassifyIntent(text string) models.Intent {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "compare") || strings.Contains(text, " vs ") || strings.Contains(text, "versus"):
		return models.IntentCompare
	case strings.Contains(text, "trend") || strings.Contains(text, "over"):
		return models.IntentTrend
	default:
		return models.IntentAverage
	}
}

// ParseQuery runs intent classification and entity extraction over one query.
func ParseQuery(text string, known []string) models.ParsedQuery {
	return NewLocationIndex(known).Parse(text)
}
