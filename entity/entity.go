// Package entity hydrates raw Jikan/MyAnimeList API payloads into typed
// domain objects: Anime, Manga, Character and Person, plus the
// lightweight partial references they point at.
//
// Hydration is a pure, synchronous transformation. Each constructor takes
// the caller-known numeric ID and the decoded payload; optional fields
// absent from the payload stay nil, composite fields the hydrator cannot
// do without produce typed errors. The result is a snapshot owned by the
// caller, never mutated afterwards.
package entity

import "strings"

// splitDateRange splits an "Apr 3, 2020 to Jun 26, 2020" style range
// around the literal " to " separator. Without the separator the whole
// string is the start and the end stays nil.
func splitDateRange(s string) (start, end *string) {
	if before, after, found := strings.Cut(s, " to "); found {
		return &before, &after
	}
	return &s, nil
}

// genreNames extracts the genre-name list, preferring the "genre"
// spelling and falling back to "genres". The nil result is meaningful:
// it says the payload carried no genre data at all, as opposed to an
// empty genre list.
func genreNames(raw Raw) []string {
	recs := raw.optMaps("genre")
	if recs == nil {
		recs = raw.optMaps("genres")
	}
	if len(recs) == 0 {
		return nil
	}
	names := make([]string, 0, len(recs))
	for _, g := range recs {
		if name := g.optString("name"); name != nil {
			names = append(names, *name)
		}
	}
	return names
}

// requireList returns the sub-records under key, failing when the key is
// absent entirely. Used for the appearance lists the upstream API always
// sends for character pages.
func requireList(raw Raw, key string) ([]Raw, error) {
	if _, ok := raw[key]; !ok {
		return nil, &ErrMissingField{Field: key}
	}
	recs := raw.optMaps(key)
	if recs == nil {
		return nil, &ErrMissingField{Field: key}
	}
	return recs, nil
}
