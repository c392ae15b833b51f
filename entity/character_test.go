package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalCharacter returns the smallest payload NewCharacter accepts.
func minimalCharacter() Raw {
	return Raw{
		"animeography": []any{},
		"mangaography": []any{},
	}
}

func TestNewCharacter(t *testing.T) {
	raw := Raw{
		"name":             "Spike Spiegel",
		"name_kanji":       "スパイク・スピーゲル",
		"link_canonical":   "https://myanimelist.net/character/1/Spike_Spiegel",
		"image_url":        "https://cdn.myanimelist.net/images/characters/4/50197.jpg",
		"member_favorites": float64(33036),
		"about":            "Birthdate: June 26, 2044",
		"animeography": []any{
			map[string]any{
				"name": "Cowboy Bebop",
				"url":  "https://myanimelist.net/anime/1/Cowboy_Bebop",
			},
			map[string]any{
				"name": "Cowboy Bebop: Tengoku no Tobira",
				"url":  "https://myanimelist.net/anime/5/Cowboy_Bebop__Tengoku_no_Tobira",
			},
		},
		"mangaography": []any{
			map[string]any{
				"name": "Cowboy Bebop",
				"url":  "https://myanimelist.net/manga/173/Cowboy_Bebop",
			},
		},
		"voice_actors": []any{
			map[string]any{
				"name":     "Yamadera, Kouichi",
				"language": "Japanese",
			},
		},
	}

	c, err := NewCharacter(1, raw)
	require.NoError(t, err)

	assert.Equal(t, 1, c.ID)
	require.NotNil(t, c.Name)
	assert.Equal(t, "Spike Spiegel", *c.Name)
	require.NotNil(t, c.JapaneseName)
	assert.Equal(t, "スパイク・スピーゲル", *c.JapaneseName)
	require.NotNil(t, c.Favorites)
	assert.Equal(t, 33036, *c.Favorites)

	require.Len(t, c.Animeography, 2)
	assert.Equal(t, 1, c.Animeography[0].ID)
	require.NotNil(t, c.Animeography[0].Title)
	assert.Equal(t, "Cowboy Bebop", *c.Animeography[0].Title)
	assert.Equal(t, 5, c.Animeography[1].ID)

	require.Len(t, c.Mangaography, 1)
	assert.Equal(t, 173, c.Mangaography[0].ID)

	// Voice actors stay opaque.
	require.Len(t, c.VoiceActors, 1)
	assert.Equal(t, "Yamadera, Kouichi", c.VoiceActors[0]["name"])
}

func TestNewCharacter_OptionalFieldsDefaultToNil(t *testing.T) {
	c, err := NewCharacter(9, minimalCharacter())
	require.NoError(t, err)

	assert.Equal(t, 9, c.ID)
	assert.Nil(t, c.Name)
	assert.Nil(t, c.JapaneseName)
	assert.Nil(t, c.Link)
	assert.Nil(t, c.Image)
	assert.Nil(t, c.Favorites)
	assert.Nil(t, c.About)
	assert.Nil(t, c.VoiceActors)
	assert.Empty(t, c.Animeography)
	assert.Empty(t, c.Mangaography)
}

func TestNewCharacter_MissingAppearanceLists(t *testing.T) {
	t.Run("missing animeography", func(t *testing.T) {
		raw := minimalCharacter()
		delete(raw, "animeography")

		_, err := NewCharacter(1, raw)
		requireMissingField(t, err, "animeography")
	})

	t.Run("missing mangaography", func(t *testing.T) {
		raw := minimalCharacter()
		delete(raw, "mangaography")

		_, err := NewCharacter(1, raw)
		requireMissingField(t, err, "mangaography")
	})
}

func TestNewCharacter_AppearanceWithoutID(t *testing.T) {
	raw := minimalCharacter()
	raw["animeography"] = []any{
		map[string]any{
			"name": "Cowboy Bebop",
			"url":  "https://myanimelist.net/anime/Cowboy_Bebop",
		},
	}

	_, err := NewCharacter(1, raw)
	require.Error(t, err)
}
