package entity

import (
	"strconv"
	"strings"
)

// ParseID extracts the numeric identifier embedded in a MAL entity URL,
// e.g. "https://myanimelist.net/character/1000/Name" yields 1000. The ID
// is the first fully-numeric path segment.
func ParseID(url string) (int, error) {
	for _, seg := range strings.Split(url, "/") {
		if seg == "" {
			continue
		}
		id, err := strconv.Atoi(seg)
		if err == nil && id >= 0 {
			return id, nil
		}
	}
	return 0, &ErrMalformedReference{URL: url}
}
