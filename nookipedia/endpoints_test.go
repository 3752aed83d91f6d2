package nookipedia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a mock API server and returns a client pointed
// at it plus the recorded request path and query.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestGetFish(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nh/fish/sea%20bass", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(Fish{Name: "sea bass", SellNook: 400, Location: "Sea"})
	})

	fish, err := client.GetFish(context.Background(), "sea%20bass", nil)
	require.NoError(t, err)
	assert.Equal(t, "sea bass", fish.Name)
	assert.Equal(t, 400, fish.SellNook)
}

func TestGetFishByMonth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nh/fish", r.URL.Path)
		assert.Equal(t, "current", r.URL.Query().Get("month"))
		json.NewEncoder(w).Encode(CritterMonth[Fish]{
			Month: "8",
			North: []Fish{{Name: "sturgeon"}},
			South: []Fish{{Name: "football fish"}},
		})
	})

	result, err := client.GetFishByMonth(context.Background(), "current", nil)
	require.NoError(t, err)
	assert.Equal(t, "8", result.Month)
	require.Len(t, result.North, 1)
	require.Len(t, result.South, 1)
	assert.Equal(t, "sturgeon", result.North[0].Name)
	assert.Equal(t, "football fish", result.South[0].Name)
}

func TestGetFishByMonthKeepsCallerQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "current", r.URL.Query().Get("month"))
		assert.Equal(t, "true", r.URL.Query().Get("excludedetails"))
		json.NewEncoder(w).Encode(CritterMonth[Fish]{})
	})

	callerOpts := &RequestOptions{Query: Query{"excludedetails": true}}
	_, err := client.GetFishByMonth(context.Background(), "current", callerOpts)
	require.NoError(t, err)

	// The caller's options bag stays untouched.
	_, hasMonth := callerOpts.Query["month"]
	assert.False(t, hasMonth)
}

func TestGetVillagers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/villagers", r.URL.Path)
		assert.Equal(t, []string{"NH", "NL"}, r.URL.Query()["game"])
		json.NewEncoder(w).Encode([]Villager{
			{Name: "Marshal", Species: "Squirrel", Personality: "Smug"},
		})
	})

	villagers, err := client.GetVillagers(context.Background(), &RequestOptions{
		Query: Query{"game": []string{"NH", "NL"}},
	})
	require.NoError(t, err)
	require.Len(t, villagers, 1)
	assert.Equal(t, "Marshal", villagers[0].Name)
}

func TestGetVillagerFiltersByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Raymond", r.URL.Query().Get("name"))
		json.NewEncoder(w).Encode([]Villager{{Name: "Raymond"}})
	})

	villagers, err := client.GetVillager(context.Background(), "Raymond", nil)
	require.NoError(t, err)
	require.Len(t, villagers, 1)
}

func TestGetRecipeNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorBody{Title: "No data was found for the given query."})
	})

	_, err := client.GetRecipe(context.Background(), "nonexistent", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
}

func TestGetFossilGroupPathParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nh/fossils/groups/tyrannosaurus", r.URL.Path)
		json.NewEncoder(w).Encode(FossilGroup{Name: "tyrannosaurus", Room: 3})
	})

	group, err := client.GetFossilGroup(context.Background(), "tyrannosaurus", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, group.Room)
}

func TestGetEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nh/events", r.URL.Path)
		assert.Equal(t, "2026-08-23", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode([]Event{
			{Event: "Bug-Off", Date: "2026-08-23", Type: "Event"},
		})
	})

	events, err := client.GetEvents(context.Background(), &RequestOptions{
		Query: Query{"date": "2026-08-23"},
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Bug-Off", events[0].Event)
}

func TestTestConnection(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]Event{})
		})
		assert.NoError(t, client.TestConnection(context.Background()))
	})

	t.Run("bad key", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorBody{Title: "Failed to validate UUID."})
		})

		err := client.TestConnection(context.Background())
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsUnauthorized())
	})
}
