package catalog_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/catalog", GetCatalog)
	router.GET("/api/v1/search", Search)
	router.GET("/api/v1/search/live", LiveSearch)
	return router
}

type catalogEnvelope struct {
	Message string                 `json:"message"`
	Data    models.CatalogResponse `json:"data"`
}

type liveSearchEnvelope struct {
	Message string                    `json:"message"`
	Data    models.LiveSearchResponse `json:"data"`
}

func TestGetCatalogWarmLoadsEmptySnapshot(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"torrents":[
			{"id":1,"title":"Hades II","poster":"","downloads":1500,"size":6.2,"category":["action"]},
			{"id":2,"title":"Baldur's Gate 3","poster":"","downloads":2400000,"size":122.0,"category":["rpg"]}
		]}`))
	}))
	defer remote.Close()

	require.NoError(t, services.InitCatalogAPI(remote.URL))
	catalog_cache.Invalidate()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	newCatalogRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp catalogEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	require.Len(t, resp.Data.Torrents, 2)
	assert.Equal(t, "Hades II", resp.Data.Torrents[0].Title)

	// Snapshot is now resident; later requests do not hit the remote again.
	assert.Len(t, catalog_cache.GetTorrents(), 2)
}

func TestGetCatalogSurvivesUnreachableRemote(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	remote.Close() // connection refused from here on

	require.NoError(t, services.InitCatalogAPI(remote.URL))
	catalog_cache.Invalidate()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	newCatalogRouter().ServeHTTP(w, req)

	// The view never fails; it renders the empty snapshot.
	require.Equal(t, http.StatusOK, w.Code)
	var resp catalogEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.Total)
	assert.Empty(t, resp.Data.Torrents)
}

func TestLiveSearchWarmLoadsAndLinksToFullResults(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"torrents":[
			{"id":1,"title":"Hades II","poster":"","downloads":1500,"size":6.2,"category":["action"]}
		]}`))
	}))
	defer remote.Close()

	require.NoError(t, services.InitCatalogAPI(remote.URL))
	catalog_cache.Invalidate()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/live?q=ha", nil)
	newCatalogRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp liveSearchEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "Hades II", resp.Data.Results[0].Title)
	assert.Equal(t, "/search?q=ha", resp.Data.SearchURL)
}

func TestLiveSearchBlankQueryHasNoLink(t *testing.T) {
	seq := catalog_cache.BeginFetch()
	catalog_cache.ReplaceTorrents(seq, []models.Torrent{
		{ID: 1, Title: "Hades II"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/live?q=%20%20", nil)
	newCatalogRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp liveSearchEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Results)
	assert.Empty(t, resp.Data.SearchURL)
}
