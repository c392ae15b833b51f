package tokage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		Timeout:    5 * time.Second,
		MaxRetries: 1,
		UserAgent:  "tokage-test/1.0",
	}
}

func TestClient_GetAnime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"title": "Cowboy Bebop",
			"aired_string": "Apr 3, 1998 to Apr 24, 1999",
			"genre": [{"name": "Action"}],
			"related": {
				"Side story": [
					{"type": "anime", "title": "Tengoku no Tobira", "url": "https://myanimelist.net/anime/5/Name"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	anime, err := client.GetAnime(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, anime.ID)
	require.NotNil(t, anime.Title)
	assert.Equal(t, "Cowboy Bebop", *anime.Title)
	require.NotNil(t, anime.AirEnd)
	assert.Equal(t, "Apr 24, 1999", *anime.AirEnd)
	assert.Equal(t, []string{"Action"}, anime.Genres)
	require.Len(t, anime.Related, 1)
}

func TestClient_GetManga(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manga/1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"title": "Monster",
			"published_string": "Dec 5, 1994 to Dec 20, 2001",
			"author": [{"name": "Urasawa, Naoki", "url": "https://myanimelist.net/people/1867/Naoki_Urasawa"}],
			"serialization": ["Big Comic Original"],
			"related": {}
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	manga, err := client.GetManga(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, manga.Author)
	assert.Equal(t, 1867, manga.Author.ID)
	require.NotNil(t, manga.Serialization)
	assert.Equal(t, "Big Comic Original", *manga.Serialization)
}

func TestClient_GetCharacter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/character/1000", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"name": "Spike Spiegel",
			"animeography": [{"name": "Cowboy Bebop", "url": "https://myanimelist.net/anime/1/Cowboy_Bebop"}],
			"mangaography": []
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	character, err := client.GetCharacter(context.Background(), 1000)

	require.NoError(t, err)
	assert.Equal(t, 1000, character.ID)
	require.Len(t, character.Animeography, 1)
	assert.Equal(t, 1, character.Animeography[0].ID)
	assert.Empty(t, character.Mangaography)
}

func TestClient_GetPerson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/11", r.URL.Path)
		_, _ = w.Write([]byte(`{"name": "Kouichi Yamadera", "birthday": "Jun 17, 1961"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	person, err := client.GetPerson(context.Background(), 11)

	require.NoError(t, err)
	require.NotNil(t, person.Name)
	assert.Equal(t, "Kouichi Yamadera", *person.Name)
}

func TestClient_APIErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Resource does not exist"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	_, err := client.GetAnime(context.Background(), 99999999)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Resource does not exist")
}

func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)
	_, err := client.GetAnime(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_NilConfigUsesDefaults(t *testing.T) {
	client := NewClient(nil, nil)
	assert.Equal(t, defaultBaseURL, client.baseURL)
}
