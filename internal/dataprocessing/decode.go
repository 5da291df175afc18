package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
)

// cellValue carries a cell's raw text together with its numeric
// interpretation. Parsed reports whether the numeric parse succeeded; failed
// parses degrade to zero rather than aborting the group.
type cellValue struct {
	Raw    string
	Num    float64
	Parsed bool
}

func parseCell(raw string) cellValue {
	v := cellValue{Raw: strings.TrimSpace(raw)}
	if v.Raw == "" {
		return v
	}
	if n, err := strconv.ParseFloat(v.Raw, 64); err == nil {
		v.Num = n
		v.Parsed = true
	}
	return v
}

// Text returns the trimmed cell text, empty when the column was absent.
func (v cellValue) Text() string { return v.Raw }

// Int returns the cell as an integer, 0 on empty or unparsable input.
func (v cellValue) Int() int {
	if !v.Parsed {
		return 0
	}
	return int(v.Num)
}

// Float returns the cell as a float, 0 on empty or unparsable input.
func (v cellValue) Float() float64 {
	if !v.Parsed {
		return 0
	}
	return v.Num
}

// Status returns the cell lowercased, defaulting to "pending" when empty.
func (v cellValue) Status() string {
	s := strings.ToLower(v.Raw)
	if s == "" {
		return statusPending
	}
	return s
}

const statusPending = "pending"

// satellite maps one suffix-derived column onto a named field of the decoded
// group. The cell is captured as a cellValue; the category constructor picks
// the coercion (text, int, float, status) when it reads the field.
type satellite struct {
	suffix string
	field  string
}

// categorySpec describes one entity category's wide-schema encoding: the
// primary column pattern that signals a candidate group, whether groups carry
// an occurrence ordinal, and the satellite columns that complete the record.
// Categories are data; one generic routine decodes them all.
type categorySpec struct {
	name string

	// pattern is matched against the full lowercased column name. Capture
	// group 1 is the group key; group 2, when ordinal is set, is the
	// occurrence index.
	pattern *regexp.Regexp
	ordinal bool

	// satellitesOnKey selects the stem satellite suffixes append to: the bare
	// group key (subject progress, attendance) instead of the full primary
	// column name (tests, assignments, ...).
	satellitesOnKey bool

	// numericGate requires the primary cell to parse to a strictly positive
	// number before the group materializes (attendance working-days rule).
	numericGate bool

	satellites []satellite
}

// fieldGroup is one materialized group: a key rendered for display, the
// primary cell, and every satellite coerced per its declared kind.
type fieldGroup struct {
	Key     string
	Display string
	Ordinal int
	Primary cellValue
	Fields  map[string]cellValue
}

// Field returns the named satellite value, zero cellValue when the spec does
// not declare it.
func (g fieldGroup) Field(name string) cellValue {
	return g.Fields[name]
}

// decodeGroups runs the generic wide-schema extraction for one category over
// a header/row pair. Header order is preserved as emission order. The routine
// is total: malformed cells degrade to typed defaults and empty or gated-out
// primaries skip the group without error.
func decodeGroups(s *Sheet, row []string, spec categorySpec) []fieldGroup {
	var groups []fieldGroup
	for i, name := range s.Header {
		trimmed := strings.TrimSpace(name)
		lower := strings.ToLower(trimmed)
		m := spec.pattern.FindStringSubmatchIndex(lower)
		if m == nil {
			continue
		}

		primary := parseCell(Cell(row, i))
		if spec.numericGate {
			if !primary.Parsed || primary.Num <= 0 {
				continue
			}
		} else if primary.Raw == "" {
			continue
		}

		// Slice the untouched header text with the match indices so the key
		// keeps its raw casing.
		key := trimmed[m[2]:m[3]]
		g := fieldGroup{
			Key:     key,
			Display: displayName(key),
			Primary: primary,
			Fields:  make(map[string]cellValue, len(spec.satellites)),
		}
		if spec.ordinal && len(m) >= 6 {
			g.Ordinal, _ = strconv.Atoi(lower[m[4]:m[5]])
		}

		stem := trimmed
		if spec.satellitesOnKey {
			stem = key
		}
		for _, sat := range spec.satellites {
			g.Fields[sat.field] = parseCell(s.CellNamed(row, stem+sat.suffix))
		}
		groups = append(groups, g)
	}
	return groups
}

// displayName renders a group key for display: underscore-separated words,
// each capitalized ("social_science" -> "Social Science").
func displayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// derivePercent applies the percentage fallback rule: a percentage cell that
// parsed is used verbatim, otherwise the value is derived from
// numerator/denominator when the denominator is positive, otherwise 0.
func derivePercent(pct cellValue, numerator, denominator float64) float64 {
	if pct.Parsed {
		return pct.Num
	}
	if denominator > 0 {
		return numerator / denominator * 100
	}
	return 0
}
