package collections

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// City is a city record.
type City struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

// SortOption configures SortCities.
type SortOption func(*sortConfig)

type sortConfig struct {
	lang language.Tag
}

// WithLanguage sets the language whose collation rules are used for
// comparing names. The default is the root locale (language.Und).
func WithLanguage(tag language.Tag) SortOption {
	return func(c *sortConfig) {
		c.lang = tag
	}
}

// SortCities returns a new slice with cities sorted ascending by country,
// then by city. Records with equal keys keep their relative order.
// The input slice is not modified.
func SortCities(cities []City, opts ...SortOption) []City {
	conf := sortConfig{lang: language.Und}
	for _, opt := range opts {
		opt(&conf)
	}
	coll := collate.New(conf.lang)
	sorted := make([]City, len(cities))
	copy(sorted, cities)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := coll.CompareString(sorted[i].Country, sorted[j].Country); c != 0 {
			return c < 0
		}
		return coll.CompareString(sorted[i].City, sorted[j].City) < 0
	})
	return sorted
}
