package respond

import (
	"net/http"
	"strconv"
	"strings"
)

// format is a response representation chosen from the Accept header.
type format int

const (
	formatJSON format = iota
	formatCBOR
	formatHTML
)

// mediaRange is one parsed Accept header entry.
type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept parses an Accept header value into media ranges per RFC 9110.
// Entries with an invalid q-value keep the default of 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		mediaType, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
		if mediaType == "" {
			continue
		}

		mr := mediaRange{q: 1.0, subtype: "*"}
		if typ, sub, ok := strings.Cut(mediaType, "/"); ok {
			mr.typ, mr.subtype = strings.TrimSpace(typ), strings.TrimSpace(sub)
		} else {
			mr.typ = mediaType
		}

		for param := range strings.SplitSeq(params, ";") {
			key, val, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			}
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity returns how precisely mr names f, or 0 when it does not match.
func (mr mediaRange) specificity(f format) int {
	switch {
	case mr.typ == "*" && mr.subtype == "*":
		return 1
	case f == formatHTML:
		if mr.typ != "text" {
			return 0
		}
		if mr.subtype == "html" {
			return 3
		}
		if mr.subtype == "*" {
			return 2
		}
		return 0
	case mr.typ != "application":
		return 0
	case mr.subtype == "*":
		return 2
	}

	name := "json"
	if f == formatCBOR {
		name = "cbor"
	}
	switch {
	case mr.subtype == "problem+"+name:
		return 4
	case mr.subtype == name, strings.HasSuffix(mr.subtype, "+"+name):
		return 3
	}
	return 0
}

// selectFormat picks the representation for header among the allowed formats.
// The q-value of the most specific matching range decides; ties go to the
// earlier entry in allowed. An empty or unmatched header selects allowed[0].
func selectFormat(header string, allowed ...format) format {
	ranges := parseAccept(header)
	best, bestQ, bestSpec := allowed[0], 0.0, 0

	for _, f := range allowed {
		q, spec := -1.0, 0
		for _, mr := range ranges {
			s := mr.specificity(f)
			if s == 0 || s < spec {
				continue
			}
			if s > spec || mr.q > q {
				q, spec = mr.q, s
			}
		}
		if q > bestQ || (q == bestQ && q > 0 && spec > bestSpec) {
			best, bestQ, bestSpec = f, q, spec
		}
	}
	return best
}

// ensureVary adds values to the Vary header without duplicating existing entries.
func ensureVary(h http.Header, values ...string) {
	seen := make(map[string]struct{})
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			seen[strings.ToLower(strings.TrimSpace(part))] = struct{}{}
		}
	}
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		h.Add("Vary", v)
		seen[key] = struct{}{}
	}
}
