package entity

// Manga is a fully-hydrated MAL manga entry (novels included).
type Manga struct {
	ID            int
	Title         *string
	Type          *string
	Synonyms      []string
	Image         *string
	JapaneseTitle *string

	Status       *string
	Volumes      *int
	Chapters     *int
	Publishing   *bool
	PublishStart *string
	PublishEnd   *string

	Synopsis      *string
	Author        *PartialPerson
	Serialization *string
	Genres        []string
	Link          *string

	Score      *Score
	Rank       *int
	Popularity *int
	Members    *int
	Favorites  *int

	Related []Relation
}

// NewManga hydrates a Manga from its numeric ID and a raw API payload.
// "published_string", a non-empty "author" list, a non-empty
// "serialization" list and the "related" mapping are required; everything
// else defaults to nil when absent.
func NewManga(id int, raw Raw) (*Manga, error) {
	m := &Manga{
		ID:            id,
		Title:         raw.optString("title"),
		Type:          raw.optString("type"),
		Synonyms:      raw.optStrings("title_synonyms"),
		Image:         raw.optString("image_url"),
		JapaneseTitle: raw.optString("title_japanese"),
		Status:        raw.optString("status"),
		Volumes:       raw.optInt("volumes"),
		Chapters:      raw.optInt("chapters"),
		Publishing:    raw.optBool("publishing"),
		Synopsis:      raw.optString("synopsis"),
		Genres:        genreNames(raw),
		Link:          raw.optString("link_canonical"),
		Score:         raw.optScore("score"),
		Rank:          raw.optInt("rank"),
		Popularity:    raw.optInt("popularity"),
		Members:       raw.optInt("members"),
		Favorites:     raw.optInt("favorites"),
	}

	published := raw.optString("published_string")
	if published == nil {
		return nil, &ErrMissingField{Field: "published_string"}
	}
	m.PublishStart, m.PublishEnd = splitDateRange(*published)

	// The author list holds one record per credited role; the first one
	// is the primary author.
	authors := raw.optMaps("author")
	if len(authors) == 0 {
		return nil, &ErrMissingField{Field: "author"}
	}
	author, err := newPartialPersonFromAuthor(authors[0])
	if err != nil {
		return nil, err
	}
	m.Author = author

	serialization, err := serializationName(raw)
	if err != nil {
		return nil, err
	}
	m.Serialization = serialization

	related, err := buildRelated(raw)
	if err != nil {
		return nil, err
	}
	m.Related = related

	return m, nil
}

// serializationName takes the first entry of the serialization list,
// which the API sends either as a bare magazine name or as a sub-record.
// TODO: model the full list once the upstream shape settles.
func serializationName(raw Raw) (*string, error) {
	items := raw.optList("serialization")
	if len(items) == 0 {
		return nil, &ErrMissingField{Field: "serialization"}
	}
	if s, ok := items[0].(string); ok {
		return &s, nil
	}
	if rec, ok := asRaw(items[0]); ok {
		return rec.optString("name"), nil
	}
	return nil, nil
}
