package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCandidatesKnownBrand(t *testing.T) {
	candidates, err := ResolveCandidates("Butterick", "6055")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "https://www.simplicity.com/butterick/b6055/", candidates[0].URL)
	assert.False(t, candidates[0].Digital)

	assert.Equal(t, "https://www.simplicity.com/butterick/pdb6055/", candidates[1].URL)
	assert.True(t, candidates[1].Digital)
}

func TestResolveCandidatesBrandCodes(t *testing.T) {
	tests := []struct {
		brand   string
		primary string
	}{
		{"Vogue", "https://www.simplicity.com/vogue-patterns/v1234/"},
		{"Simplicity", "https://www.simplicity.com/simplicity/s1234/"},
		{"McCall's", "https://www.simplicity.com/mccalls/m1234/"},
		{"Know Me", "https://www.simplicity.com/know-me/me1234/"},
		{"New Look", "https://www.simplicity.com/new-look/n1234/"},
		{"Burda", "https://www.simplicity.com/burda-style/bur1234/"},
	}

	for _, tt := range tests {
		t.Run(tt.brand, func(t *testing.T) {
			candidates, err := ResolveCandidates(tt.brand, "1234")
			require.NoError(t, err)
			assert.Equal(t, tt.primary, candidates[0].URL)
		})
	}
}

func TestResolveCandidatesUnsupportedBrand(t *testing.T) {
	candidates, err := ResolveCandidates("KwikSew", "4321")
	require.Error(t, err)
	assert.Nil(t, candidates)
	assert.Equal(t, KindUnsupportedBrand, KindOf(err))
	assert.Contains(t, err.Error(), "KwikSew")
}

func TestResolveCandidatesBrandIsCaseSensitive(t *testing.T) {
	_, err := ResolveCandidates("butterick", "6055")
	require.Error(t, err)
	assert.Equal(t, KindUnsupportedBrand, KindOf(err))
}

func TestSupportedBrandsSorted(t *testing.T) {
	brands := SupportedBrands()
	assert.Equal(t, []string{
		"Burda", "Butterick", "Know Me", "McCall's", "New Look", "Simplicity", "Vogue",
	}, brands)
}
