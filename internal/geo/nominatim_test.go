package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode_ParseiaLatLonDeString(t *testing.T) {
	var gotUA, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-38.9516","lon":"-68.0591"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "dino_app_mongo")
	pt, err := c.Geocode(context.Background(), "Neuquén, Argentina")

	require.NoError(t, err)
	require.NotNil(t, pt)
	assert.InDelta(t, -38.9516, pt.Lat, 1e-9)
	assert.InDelta(t, -68.0591, pt.Lon, 1e-9)
	assert.Equal(t, "dino_app_mongo", gotUA)
	assert.Equal(t, "Neuquén, Argentina", gotQuery)
}

func TestGeocode_EnderecoNaoEncontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	pt, err := NewClient(srv.URL, "ua").Geocode(context.Background(), "Lugar Nenhum")

	assert.NoError(t, err)
	assert.Nil(t, pt)
}

func TestGeocode_StatusNaoOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	pt, err := NewClient(srv.URL, "ua").Geocode(context.Background(), "Neuquén, Argentina")

	assert.Error(t, err)
	assert.Nil(t, pt)
}

func TestGeocode_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, "ua").Geocode(ctx, "Neuquén, Argentina")
	assert.Error(t, err)
}
