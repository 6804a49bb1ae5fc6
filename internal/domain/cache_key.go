package domain

import "strings"

const (
	keyRestrictionSeparator = "|"
	restrictionJoiner       = ","
)

// CacheKey derives the cache identity of a request.
// Restrictions are joined in the order given; no normalization is applied.
func CacheKey(query string, restrictions []string) string {
	if len(restrictions) == 0 {
		return query
	}
	return query + keyRestrictionSeparator + strings.Join(restrictions, restrictionJoiner)
}
