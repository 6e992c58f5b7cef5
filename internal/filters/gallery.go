// Package filters holds query filter rules applied to database records.
package filters

import "github.com/davrell/kinsite/internal/gen"

// CountOp compares a record's media count against the configured threshold.
type CountOp int

const (
	LessThan CountOp = iota
	EqualTo
	GreaterThan
)

// ParseCountOp maps the user-facing option strings to a CountOp. Unknown
// strings mean "equal to".
func ParseCountOp(s string) CountOp {
	switch s {
	case "less than":
		return LessThan
	case "greater than":
		return GreaterThan
	default:
		return EqualTo
	}
}

// HasGallery matches records with a certain number of media references.
type HasGallery struct {
	Count int
	Op    CountOp
}

// Matches reports whether the record's gallery size satisfies the rule.
func (r HasGallery) Matches(obj gen.HasMedia) bool {
	count := len(obj.MediaList())
	switch r.Op {
	case LessThan:
		return count < r.Count
	case GreaterThan:
		return count > r.Count
	}
	return count == r.Count
}
