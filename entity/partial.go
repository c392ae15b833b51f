package entity

// Partial references are minimal stand-ins for entities the payload only
// points at (related titles, appearances, authors). They carry just
// enough to identify the target without hydrating it, which keeps nested
// construction bounded.

// PartialAnime is a lightweight reference to an Anime.
type PartialAnime struct {
	ID    int
	Title *string
	URL   *string

	// Relation is the label a related-entity record was tagged with
	// (e.g. "Sequel"); nil for appearance records.
	Relation *string
}

// EntityKind reports "anime", satisfying Relation.
func (*PartialAnime) EntityKind() string { return "anime" }

func newPartialAnimeFromRelation(rec Raw) (*PartialAnime, error) {
	id, err := referenceID(rec)
	if err != nil {
		return nil, err
	}
	return &PartialAnime{
		ID:       id,
		Title:    rec.firstString("title", "name"),
		URL:      rec.optString("url"),
		Relation: rec.optString("relation"),
	}, nil
}

func newPartialAnimeFromAppearance(rec Raw) (*PartialAnime, error) {
	id, err := referenceID(rec)
	if err != nil {
		return nil, err
	}
	return &PartialAnime{
		ID:    id,
		Title: rec.firstString("name", "title"),
		URL:   rec.optString("url"),
	}, nil
}

// PartialManga is a lightweight reference to a Manga.
type PartialManga struct {
	ID       int
	Title    *string
	URL      *string
	Relation *string
}

// EntityKind reports "manga", satisfying Relation.
func (*PartialManga) EntityKind() string { return "manga" }

func newPartialMangaFromRelation(rec Raw) (*PartialManga, error) {
	id, err := referenceID(rec)
	if err != nil {
		return nil, err
	}
	return &PartialManga{
		ID:       id,
		Title:    rec.firstString("title", "name"),
		URL:      rec.optString("url"),
		Relation: rec.optString("relation"),
	}, nil
}

func newPartialMangaFromAppearance(rec Raw) (*PartialManga, error) {
	id, err := referenceID(rec)
	if err != nil {
		return nil, err
	}
	return &PartialManga{
		ID:    id,
		Title: rec.firstString("name", "title"),
		URL:   rec.optString("url"),
	}, nil
}

// PartialPerson is a lightweight reference to a Person, built from a
// manga's author record.
type PartialPerson struct {
	ID   int
	Name *string
	URL  *string
}

func newPartialPersonFromAuthor(rec Raw) (*PartialPerson, error) {
	id, err := referenceID(rec)
	if err != nil {
		return nil, err
	}
	return &PartialPerson{
		ID:   id,
		Name: rec.optString("name"),
		URL:  rec.optString("url"),
	}, nil
}

// referenceID parses the record's numeric ID out of its URL field.
func referenceID(rec Raw) (int, error) {
	url := rec.optString("url")
	if url == nil {
		return 0, &ErrMissingField{Field: "url"}
	}
	return ParseID(*url)
}
