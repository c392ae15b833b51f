package entity

// Person is a fully-hydrated MAL person entry (voice actors, staff,
// authors).
type Person struct {
	ID        int
	Name      *string
	Link      *string
	Image     *string
	Favorites *int
	Birthday  *string
	More      *string
	Website   *string

	// Staff positions, published manga and voice-acting roles are kept
	// as opaque raw records; the upstream shapes are not modeled yet.
	AnimeStaffPositions []Raw
	PublishedManga      []Raw
	VoiceActingRoles    []Raw
}

// NewPerson hydrates a Person from its numeric ID and a raw API payload.
// Every field is optional and defaults to nil when absent.
func NewPerson(id int, raw Raw) (*Person, error) {
	return &Person{
		ID:                  id,
		Name:                raw.optString("name"),
		Link:                raw.optString("link_canonical"),
		Image:               raw.optString("image_url"),
		Favorites:           raw.optInt("member_favorites"),
		Birthday:            raw.optString("birthday"),
		More:                raw.optString("more"),
		Website:             raw.optString("website"),
		AnimeStaffPositions: raw.optMaps("anime_staff_position"),
		PublishedManga:      raw.optMaps("published_manga"),
		VoiceActingRoles:    raw.optMaps("voice_acting_role"),
	}, nil
}
