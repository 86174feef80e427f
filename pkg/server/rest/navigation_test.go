package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
	"github.com/lintang-b-s/modalroute/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/modalroute/pkg/kv"
	"github.com/lintang-b-s/modalroute/pkg/network"
	"github.com/lintang-b-s/modalroute/pkg/server/rest/service"
	"github.com/lintang-b-s/modalroute/pkg/snap"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, c.Write(&pb))
	return pb.GetCounter().GetValue()
}

func float64Ptr(f float64) *float64 {
	return &f
}

func newTestRouter(t *testing.T) (*chi.Mux, *Metrics) {
	t.Helper()

	def := network.ReferenceDefinition()
	// give A and B a location so the nearest city lookup has something to find
	def.Cities[0].Lat, def.Cities[0].Lon = float64Ptr(-7.5755), float64Ptr(110.8243)
	def.Cities[1].Lat, def.Cities[1].Lon = float64Ptr(-7.7956), float64Ptr(110.3695)
	n, err := network.Build(def)
	require.NoError(t, err)

	db, err := kv.OpenKVDB("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.BuildH3IndexedCities(context.Background(), n.Cities()))

	svc := service.NewNavigationService(n, routingalgorithm.NewRouteAlgorithm(n.Graph()), snap.NewCitySnapper(db))

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := chi.NewRouter()
	r.Use(PromeHttpMiddleware(m))
	NavigatorRouter(r, svc, m)
	return r, m
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestShortestPathHandler(t *testing.T) {
	r, m := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/navigations/shortest-path",
		map[string]interface{}{"source_id": 0, "destination_id": 4, "mode": "car"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ShortestPathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	require.NotNil(t, resp.Cost)
	assert.Equal(t, uint64(370), *resp.Cost)
	assert.Equal(t, datastructure.Car, resp.Mode)
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, resp.Path)
	assert.Equal(t, []string{"City A", "City B", "City C", "City D", "City E"}, resp.Cities)
	require.Len(t, resp.Legs, 4)
	assert.Equal(t, "City A", resp.Legs[0].From)
	assert.Equal(t, uint32(80), resp.Legs[0].Cost)
	assert.Empty(t, resp.Message)

	assert.Equal(t, 1.0, counterValue(t, m.ShortestPathRuns.WithLabelValues("car", "true")))
	assert.Equal(t, 1.0, counterValue(t,
		m.RequestCount.WithLabelValues("/api/navigations/shortest-path", http.MethodPost, "200")))
}

func TestShortestPathHandlerSameCity(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/navigations/shortest-path",
		map[string]interface{}{"source_id": 2, "destination_id": 2, "mode": "Airplane"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ShortestPathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, uint64(0), *resp.Cost)
	assert.Equal(t, []int32{2}, resp.Path)
	assert.Empty(t, resp.Legs)
}

func TestShortestPathHandlerErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"unknown city", map[string]interface{}{"source_id": 0, "destination_id": 5, "mode": "train"}, http.StatusNotFound},
		{"bad mode", map[string]interface{}{"source_id": 0, "destination_id": 1, "mode": "boat"}, http.StatusBadRequest},
		{"missing destination", map[string]interface{}{"source_id": 0, "mode": "train"}, http.StatusBadRequest},
		{"negative id", map[string]interface{}{"source_id": -1, "destination_id": 1, "mode": "train"}, http.StatusBadRequest},
		{"not json", "source_id=0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/navigations/shortest-path", tt.body)
			assert.Equal(t, tt.want, rec.Code)

			var resp ErrResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.StatusText)
			assert.NotEmpty(t, resp.ErrorText)
		})
	}
}

func TestShortestPathHandlerValidationMessages(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/navigations/shortest-path",
		map[string]interface{}{"source_id": 0, "destination_id": -3, "mode": "car"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.ErrValidation, 1)
	assert.Contains(t, resp.ErrValidation[0], "DestinationID")
}

func TestManyToManyHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/navigations/many-to-many",
		map[string]interface{}{"source_ids": []int{0, 1}, "destination_ids": []int{3, 4}, "mode": "train"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ManyToManyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 4)

	want := []struct {
		s, d int32
		cost uint64
	}{{0, 3, 210}, {0, 4, 270}, {1, 3, 160}, {1, 4, 220}}
	for i, w := range want {
		assert.Equal(t, w.s, resp.Results[i].SourceID)
		assert.Equal(t, w.d, resp.Results[i].DestinationID)
		assert.Equal(t, w.cost, *resp.Results[i].Cost)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/navigations/many-to-many",
		map[string]interface{}{"source_ids": []int{}, "destination_ids": []int{3}, "mode": "train"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListingHandlers(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/navigations/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cities CitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	require.Len(t, cities.Cities, 5)
	assert.Equal(t, "City E", cities.Cities[4].Name)
	assert.True(t, cities.Cities[0].HasLocation())
	assert.False(t, cities.Cities[4].HasLocation())

	rec = doJSON(t, r, http.MethodGet, "/api/navigations/routes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var routes RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	require.Len(t, routes.Routes, 12)
	assert.Equal(t, LegResponse{FromID: 0, From: "City A", ToID: 1, To: "City B",
		Mode: datastructure.Train, Distance: 100, Cost: 50}, routes.Routes[0])

	rec = doJSON(t, r, http.MethodGet, "/api/navigations/modes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var modes []ModeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modes))
	assert.Equal(t, []ModeResponse{{0, "train"}, {1, "car"}, {2, "airplane"}}, modes)
}

func TestComponentsHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/navigations/components?mode=car", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ComponentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, datastructure.Car, resp.Mode)
	require.Len(t, resp.Components, 1)
	assert.Len(t, resp.Components[0], 5)
	assert.Equal(t, CityRef{ID: 0, Name: "City A"}, resp.Components[0][0])

	rec = doJSON(t, r, http.MethodGet, "/api/navigations/components?mode=ship", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, r, http.MethodGet, "/api/navigations/components", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearestCityHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/navigations/nearest-city",
		map[string]interface{}{"lat": -7.56, "lon": 110.80})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp NearestCityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "City A", resp.City.Name)
	assert.InDelta(t, 3.1, resp.DistanceKM, 1.0)

	rec = doJSON(t, r, http.MethodPost, "/api/navigations/nearest-city",
		map[string]interface{}{"lat": 51.5, "lon": -0.12})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/navigations/nearest-city",
		map[string]interface{}{"lat": 95.0, "lon": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
