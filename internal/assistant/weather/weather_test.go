package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimitra-poc/server/internal/assistant/model"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "Bengaluru":
			w.Write([]byte(`{"name": "Bengaluru", "main": {"temp": 28, "temp_max": 31, "temp_min": 22, "humidity": 70}, "rain": {"1h": 5}}`))
		case "Mysuru":
			w.Write([]byte(`{"name": "Mysuru", "main": {"temp": 26, "humidity": 60}}`))
		default:
			http.Error(w, `{"cod": "404", "message": "city not found"}`, http.StatusNotFound)
		}
	})
	mux.HandleFunc("/geo/1.0/reverse", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "0.000000" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"name": "Bengaluru"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testClient(t *testing.T) *Client {
	return NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     newTestServer(t).URL,
		DefaultCity: "Bengaluru",
		Timeout:     2,
	})
}

func TestClientByCity(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the snapshot", func(t *testing.T) {
		snap, err := testClient(t).ByCity(ctx, "Bengaluru")
		require.NoError(t, err)
		assert.Equal(t, model.WeatherSnapshot{Temperature: 28, Humidity: 70, Rainfall: 5, City: "Bengaluru"}, snap)
	})

	t.Run("missing rain block defaults to zero", func(t *testing.T) {
		snap, err := testClient(t).ByCity(ctx, "Mysuru")
		require.NoError(t, err)
		assert.Zero(t, snap.Rainfall)
	})

	t.Run("unknown city yields the sentinel", func(t *testing.T) {
		snap, err := testClient(t).ByCity(ctx, "Atlantis")
		assert.Error(t, err)
		assert.False(t, snap.Available())
	})

	t.Run("unreachable service yields the sentinel", func(t *testing.T) {
		c := NewClient(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1", Timeout: 1})
		snap, err := c.ByCity(ctx, "Bengaluru")
		assert.Error(t, err)
		assert.False(t, snap.Available())
	})
}

func TestClientByLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("reverse geocodes the locator", func(t *testing.T) {
		snap, err := testClient(t).ByLocation(ctx, DefaultLocation)
		require.NoError(t, err)
		assert.Equal(t, "Bengaluru", snap.City)
	})

	t.Run("geocode miss falls back to the default city", func(t *testing.T) {
		snap, err := testClient(t).ByLocation(ctx, FixedLocator{Lat: 0, Lon: 0})
		require.NoError(t, err)
		assert.Equal(t, "Bengaluru", snap.City)
	})

	t.Run("nil locator uses the default city", func(t *testing.T) {
		snap, err := testClient(t).ByLocation(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "Bengaluru", snap.City)
	})
}

func TestCache(t *testing.T) {
	var c Cache
	assert.False(t, c.Latest().Available())

	c.Store(model.WeatherSnapshot{Temperature: 28, City: "Bengaluru"})
	assert.Equal(t, "Bengaluru", c.Latest().City)

	// a failed refresh must not wipe the last known value
	c.Store(model.WeatherSnapshot{})
	assert.Equal(t, "Bengaluru", c.Latest().City)
}

func TestDerivations(t *testing.T) {
	assert.InDelta(t, 22.0, DewPoint(28, 70), 0.001)
	assert.InDelta(t, 0.0316, Evapotranspiration(28, 31, 22), 0.001)
	assert.Equal(t, "High", SoilMoistureBand(75))
	assert.Equal(t, "Moderate", SoilMoistureBand(60))
	assert.Equal(t, "Low", SoilMoistureBand(30))
}
