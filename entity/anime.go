package entity

// Anime is a fully-hydrated MAL anime entry.
//
// Producers, Licensors and Studios are kept as opaque raw records: the
// upstream shape for them is not modeled yet, and nil still means the
// payload omitted them entirely.
type Anime struct {
	ID            int
	Title         *string
	Type          *string
	Synonyms      []string
	Image         *string
	JapaneseTitle *string

	Status   *string
	Episodes *int
	Airing   *bool
	AirStart *string
	AirEnd   *string

	Premiered *string
	Broadcast *string
	Synopsis  *string
	Producers []Raw
	Licensors []Raw
	Studios   []Raw
	Source    *string
	Genres    []string
	Duration  *string
	Rating    *string
	Link      *string

	Score      *Score
	Rank       *int
	Popularity *int
	Members    *int
	Favorites  *int

	Related []Relation
}

// NewAnime hydrates an Anime from its numeric ID and a raw API payload.
// The payload must carry "aired_string" and the "related" mapping; every
// other field defaults to nil when absent.
func NewAnime(id int, raw Raw) (*Anime, error) {
	a := &Anime{
		ID:            id,
		Title:         raw.optString("title"),
		Type:          raw.optString("type"),
		Synonyms:      raw.optStrings("title_synonyms"),
		Image:         raw.optString("image_url"),
		JapaneseTitle: raw.optString("title_japanese"),
		Status:        raw.optString("status"),
		Episodes:      raw.optInt("episodes"),
		Airing:        raw.optBool("airing"),
		Premiered:     raw.optString("premiered"),
		Broadcast:     raw.optString("broadcast"),
		Synopsis:      raw.optString("synopsis"),
		Producers:     raw.optMaps("producer"),
		Licensors:     raw.optMaps("licensor"),
		Studios:       raw.optMaps("studio"),
		Source:        raw.optString("source"),
		Genres:        genreNames(raw),
		Duration:      raw.optString("duration"),
		Rating:        raw.optString("rating"),
		Link:          raw.optString("link_canonical"),
		Score:         raw.optScore("score"),
		Rank:          raw.optInt("rank"),
		Popularity:    raw.optInt("popularity"),
		Members:       raw.optInt("members"),
		Favorites:     raw.optInt("favorites"),
	}

	aired := raw.optString("aired_string")
	if aired == nil {
		return nil, &ErrMissingField{Field: "aired_string"}
	}
	a.AirStart, a.AirEnd = splitDateRange(*aired)

	related, err := buildRelated(raw)
	if err != nil {
		return nil, err
	}
	a.Related = related

	return a, nil
}
