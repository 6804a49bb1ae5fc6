package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/chefgenius/internal/domain"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		restrictions []string
		want         string
	}{
		{name: "no restrictions", query: "dosa", restrictions: nil, want: "dosa"},
		{name: "empty restrictions", query: "dosa", restrictions: []string{}, want: "dosa"},
		{name: "single restriction", query: "dosa", restrictions: []string{"vegan"}, want: "dosa|vegan"},
		{
			name:         "multiple restrictions keep order",
			query:        "dosa",
			restrictions: []string{"vegan", "gluten-free"},
			want:         "dosa|vegan,gluten-free",
		},
		{name: "query is not normalized", query: "  Dosa ", restrictions: nil, want: "  Dosa "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.CacheKey(tt.query, tt.restrictions))
		})
	}
}

func TestCacheKey_OrderSensitive(t *testing.T) {
	a := domain.CacheKey("salad", []string{"vegan", "nut-free"})
	b := domain.CacheKey("salad", []string{"nut-free", "vegan"})

	require.NotEqual(t, a, b)
}

func TestCacheKey_RestrictionsDistinguishQueries(t *testing.T) {
	require.NotEqual(t, domain.CacheKey("salad", nil), domain.CacheKey("salad", []string{"vegan"}))
}
