package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheaguirre/nexuscards/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

// fakeAPI serves a two-item catalog in the remote API's shape.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"results":[
			{"name":"pikachu","url":"%s/pokemon/25"},
			{"name":"charizard","url":"%s/pokemon/6"}
		]}`, srv.URL, srv.URL)
	})
	mux.HandleFunc("/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id":25,"name":"pikachu",
			"types":[{"type":{"name":"electric"}}],
			"stats":[{"base_stat":55,"stat":{"name":"attack"}}],
			"sprites":{"front_default":"pika-small.png",
				"other":{"official-artwork":{"front_default":"pika.png"}}}
		}`)
	})
	mux.HandleFunc("/pokemon/6", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id":6,"name":"charizard",
			"types":[{"type":{"name":"fire"}},{"type":{"name":"flying"}}],
			"stats":[{"base_stat":104,"stat":{"name":"attack"}}],
			"sprites":{"front_default":"char-small.png","other":{"official-artwork":{"front_default":""}}}
		}`)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestItems_LoadsAndMaps(t *testing.T) {
	srv := fakeAPI(t)
	c := NewClient(srv.URL, 50, testLogger())

	items, err := c.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	pikachu := items[0]
	assert.Equal(t, int64(25), pikachu.ID)
	assert.Equal(t, "electric", pikachu.Types)
	assert.Equal(t, RarityCommon, pikachu.Rarity)
	assert.Equal(t, "pika.png", pikachu.ImageURL, "official artwork preferred")

	charizard := items[1]
	assert.Equal(t, "fire, flying", charizard.Types)
	assert.Equal(t, RarityUltraRare, charizard.Rarity)
	assert.Equal(t, "char-small.png", charizard.ImageURL, "falls back to the default sprite")
}

func TestItems_CachesUntilReload(t *testing.T) {
	srv := fakeAPI(t)
	c := NewClient(srv.URL, 50, testLogger())
	ctx := context.Background()

	first, err := c.Items(ctx)
	require.NoError(t, err)

	srv.Close() // further requests would fail

	cached, err := c.Items(ctx)
	require.NoError(t, err, "second call must hit the cache")
	assert.Equal(t, first, cached)

	_, err = c.Reload(ctx)
	assert.Error(t, err, "reload bypasses the cache")
}

func TestItems_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 50, testLogger())
	_, err := c.Items(context.Background())
	assert.Error(t, err)
}

func TestRarityFromBaseStat(t *testing.T) {
	tests := []struct {
		stat int
		want string
	}{
		{stat: 49, want: RarityCommon},
		{stat: 69, want: RarityCommon},
		{stat: 70, want: RarityRare},
		{stat: 89, want: RarityRare},
		{stat: 90, want: RarityUltraRare},
		{stat: 150, want: RarityUltraRare},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RarityFromBaseStat(tc.stat), "stat %d", tc.stat)
	}
}
