package repositories

import (
	"strings"
)

// regexSpecial are the characters that carry meaning in POSIX regular
// expressions. User-supplied terms are embedded into case-insensitive
// regex matches (~*), so every one of them must be escaped.
const regexSpecial = `.*+?^$(){}|[]\`

// EscapeRegex escapes pattern-special characters so a crafted query term
// is matched literally, never interpreted as pattern syntax.
func EscapeRegex(term string) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		if strings.ContainsRune(regexSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TermPattern compiles one subject term into a regex pattern. Exact mode
// anchors the whole string; non-exact mode matches the term anywhere.
// Case-insensitivity comes from the ~* operator, not from the pattern.
func TermPattern(term string, exact bool) string {
	escaped := EscapeRegex(term)
	if exact {
		return "^" + escaped + "$"
	}
	return escaped
}

// ExactFromParam derives the exactness flag from the raw query value.
// Only the literal token "false" (case-insensitive) disables exact
// matching; absence or any other value keeps it on. The value is not
// trimmed: a padded " false " is not the literal token.
func ExactFromParam(raw string) bool {
	return !strings.EqualFold(raw, "false")
}

// SplitTerms splits a comma-separated subject list, trimming whitespace
// and dropping empty entries.
func SplitTerms(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

// InvestigationFilter is a compiled retrieval filter. Empty fields mean
// "no constraint", never "match nothing".
type InvestigationFilter struct {
	// MateriaPatterns are OR-ed together; a record matches when its
	// materia matches any pattern.
	MateriaPatterns []string
	// GradoPattern is always anchored; exactness for grado is not
	// configurable.
	GradoPattern string
}

// BuildInvestigationFilter compiles the raw query parameters into a
// filter. materiaParam is the comma-separated subject list, gradoParam the
// author grade, exactParam the raw exactness token.
func BuildInvestigationFilter(materiaParam, gradoParam, exactParam string) InvestigationFilter {
	f := InvestigationFilter{}
	exact := ExactFromParam(exactParam)

	for _, term := range SplitTerms(materiaParam) {
		f.MateriaPatterns = append(f.MateriaPatterns, TermPattern(term, exact))
	}

	if g := strings.TrimSpace(gradoParam); g != "" {
		f.GradoPattern = TermPattern(g, true)
	}

	return f
}

// IsEmpty reports whether the filter constrains anything.
func (f InvestigationFilter) IsEmpty() bool {
	return len(f.MateriaPatterns) == 0 && f.GradoPattern == ""
}
