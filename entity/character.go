package entity

// Character is a fully-hydrated MAL character entry.
type Character struct {
	ID           int
	Name         *string
	JapaneseName *string
	Link         *string
	Image        *string
	Favorites    *int
	About        *string

	// Animeography and Mangaography list the titles the character
	// appears in, one reference per appearance.
	Animeography []*PartialAnime
	Mangaography []*PartialManga

	// VoiceActors is kept as opaque raw records; the upstream shape is
	// not modeled yet.
	VoiceActors []Raw
}

// NewCharacter hydrates a Character from its numeric ID and a raw API
// payload. The "animeography" and "mangaography" lists are required;
// every other field defaults to nil when absent.
func NewCharacter(id int, raw Raw) (*Character, error) {
	c := &Character{
		ID:           id,
		Name:         raw.optString("name"),
		JapaneseName: raw.optString("name_kanji"),
		Link:         raw.optString("link_canonical"),
		Image:        raw.optString("image_url"),
		Favorites:    raw.optInt("member_favorites"),
		About:        raw.optString("about"),
		VoiceActors:  raw.optMaps("voice_actors"),
	}

	animeRecs, err := requireList(raw, "animeography")
	if err != nil {
		return nil, err
	}
	c.Animeography = make([]*PartialAnime, 0, len(animeRecs))
	for _, rec := range animeRecs {
		ref, err := newPartialAnimeFromAppearance(rec)
		if err != nil {
			return nil, err
		}
		c.Animeography = append(c.Animeography, ref)
	}

	mangaRecs, err := requireList(raw, "mangaography")
	if err != nil {
		return nil, err
	}
	c.Mangaography = make([]*PartialManga, 0, len(mangaRecs))
	for _, rec := range mangaRecs {
		ref, err := newPartialMangaFromAppearance(rec)
		if err != nil {
			return nil, err
		}
		c.Mangaography = append(c.Mangaography, ref)
	}

	return c, nil
}
