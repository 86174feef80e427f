package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
	"github.com/lintang-b-s/modalroute/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, from, to int32, mode datastructure.Mode) (service.Route, error)
	ShortestPathManyToMany(ctx context.Context, from, to []int32,
		mode datastructure.Mode) (map[int32]map[int32]service.Route, error)
	Cities(ctx context.Context) []datastructure.City
	Routes(ctx context.Context) []datastructure.Edge
	Modes(ctx context.Context) []datastructure.Mode
	Components(ctx context.Context, mode datastructure.Mode) ([][]int32, error)
	CityName(id int32) string
	NearestCity(ctx context.Context, lat, lon float64) (datastructure.City, float64, error)
}

type NavigationHandler struct {
	svc       NavigationService
	metrics   *Metrics
	validator *requestValidator
}

// NavigatorRouter mounts the navigation endpoints under /api/navigations. m may be nil.
func NavigatorRouter(r *chi.Mux, svc NavigationService, m *Metrics) {
	handler := &NavigationHandler{svc: svc, metrics: m, validator: newRequestValidator()}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.ShortestPath)
			r.Post("/many-to-many", handler.ShortestPathManyToMany)
			r.Get("/cities", handler.Cities)
			r.Get("/routes", handler.Routes)
			r.Get("/modes", handler.Modes)
			r.Get("/components", handler.Components)
			r.Post("/nearest-city", handler.NearestCity)
		})
	})
}

// ShortestPathRequest model info
//
//	@Description	request body untuk shortest path query antar dua kota dengan satu moda transportasi
type ShortestPathRequest struct {
	SourceID      *int32 `json:"source_id" validate:"required,gte=0"`
	DestinationID *int32 `json:"destination_id" validate:"required,gte=0"`
	Mode          string `json:"mode" validate:"required"`

	mode datastructure.Mode
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.Mode == "" {
		return errors.New("mode is required")
	}
	mode, err := datastructure.ParseMode(s.Mode)
	if err != nil {
		return err
	}
	s.mode = mode
	return nil
}

// LegResponse model info
//
//	@Description	satu edge dari path hasil shortest path query
type LegResponse struct {
	FromID   int32              `json:"from_id"`
	From     string             `json:"from"`
	ToID     int32              `json:"to_id"`
	To       string             `json:"to"`
	Mode     datastructure.Mode `json:"mode" swaggertype:"string"`
	Distance uint32             `json:"distance"`
	Cost     uint32             `json:"cost"`
}

// ShortestPathResponse model info
//
//	@Description	response body untuk shortest path query. cost null kalau tidak ada path
type ShortestPathResponse struct {
	SourceID      int32              `json:"source_id"`
	DestinationID int32              `json:"destination_id"`
	Mode          datastructure.Mode `json:"mode" swaggertype:"string"`
	Found         bool               `json:"found"`
	Cost          *uint64            `json:"cost"`
	Distance      uint64             `json:"distance"`
	Path          []int32            `json:"path"`
	Cities        []string           `json:"cities"`
	Legs          []LegResponse      `json:"legs"`
	Polyline      string             `json:"polyline,omitempty"`
	Message       string             `json:"message,omitempty"`
}

func (h *NavigationHandler) renderShortestPathResponse(from, to int32, mode datastructure.Mode,
	route service.Route) ShortestPathResponse {
	res := route.Result
	resp := ShortestPathResponse{
		SourceID:      from,
		DestinationID: to,
		Mode:          mode,
		Found:         res.Found,
		Distance:      res.Distance,
		Path:          res.Path,
		Cities:        route.Cities,
		Legs:          make([]LegResponse, 0, len(res.Legs)),
		Polyline:      route.Polyline,
	}
	if res.Found {
		cost := res.Cost
		resp.Cost = &cost
	} else {
		resp.Message = "No path found from " + h.svc.CityName(from) + " to " + h.svc.CityName(to)
	}
	for _, e := range res.Legs {
		resp.Legs = append(resp.Legs, LegResponse{
			FromID:   e.FromNodeID,
			From:     h.svc.CityName(e.FromNodeID),
			ToID:     e.ToNodeID,
			To:       h.svc.CityName(e.ToNodeID),
			Mode:     e.Mode,
			Distance: e.Distance,
			Cost:     e.Cost,
		})
	}
	return resp
}

// ShortestPath
//
//	@Summary		shortest path query antar dua kota memakai dijkstra, hanya lewat route dengan moda yang diminta
//	@Description	shortest path query antar dua kota memakai dijkstra, hanya lewat route dengan moda yang diminta. Bobot path adalah cost route
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body query shortest path"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := h.validator.Struct(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	route, err := h.svc.ShortestPath(r.Context(), *data.SourceID, *data.DestinationID, data.mode)
	if err != nil {
		render.Render(w, r, ErrorRenderer(err))
		return
	}
	if h.metrics != nil {
		h.metrics.observeQuery(data.mode.String(), route.Result.Found)
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.renderShortestPathResponse(*data.SourceID, *data.DestinationID, data.mode, route))
}

// ManyToManyRequest model info
//
//	@Description	request body untuk shortest path query dari banyak kota asal ke banyak kota tujuan
type ManyToManyRequest struct {
	SourceIDs      []int32 `json:"source_ids" validate:"required,min=1,max=100,dive,gte=0"`
	DestinationIDs []int32 `json:"destination_ids" validate:"required,min=1,max=100,dive,gte=0"`
	Mode           string  `json:"mode" validate:"required"`

	mode datastructure.Mode
}

func (s *ManyToManyRequest) Bind(r *http.Request) error {
	if len(s.SourceIDs) == 0 || len(s.DestinationIDs) == 0 {
		return errors.New("source_ids and destination_ids must not be empty")
	}
	mode, err := datastructure.ParseMode(s.Mode)
	if err != nil {
		return err
	}
	s.mode = mode
	return nil
}

// ManyToManyResponse model info
//
//	@Description	response body many to many query, satu entry per pasangan (source, destination) sesuai urutan request
type ManyToManyResponse struct {
	Mode    datastructure.Mode     `json:"mode" swaggertype:"string"`
	Results []ShortestPathResponse `json:"results"`
}

// ShortestPathManyToMany
//
//	@Summary		shortest path query dari setiap kota asal ke setiap kota tujuan
//	@Description	shortest path query dari setiap kota asal ke setiap kota tujuan. Setiap pasangan dihitung paralel di worker pool
//	@Tags			navigations
//	@Param			body	body	ManyToManyRequest	true	"request body query many to many"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/many-to-many [post]
//	@Success		200	{object}	ManyToManyResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) ShortestPathManyToMany(w http.ResponseWriter, r *http.Request) {
	data := &ManyToManyRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := h.validator.Struct(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	matrix, err := h.svc.ShortestPathManyToMany(r.Context(), data.SourceIDs, data.DestinationIDs, data.mode)
	if err != nil {
		render.Render(w, r, ErrorRenderer(err))
		return
	}

	resp := ManyToManyResponse{
		Mode:    data.mode,
		Results: make([]ShortestPathResponse, 0, len(data.SourceIDs)*len(data.DestinationIDs)),
	}
	for _, s := range data.SourceIDs {
		for _, d := range data.DestinationIDs {
			route := matrix[s][d]
			if h.metrics != nil {
				h.metrics.observeQuery(data.mode.String(), route.Result.Found)
			}
			resp.Results = append(resp.Results, h.renderShortestPathResponse(s, d, data.mode, route))
		}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// CitiesResponse model info
//
//	@Description	daftar kota di network
type CitiesResponse struct {
	Cities []datastructure.City `json:"cities"`
}

// Cities
//
//	@Summary		daftar semua kota di network
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/navigations/cities [get]
//	@Success		200	{object}	CitiesResponse
func (h *NavigationHandler) Cities(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, CitiesResponse{Cities: h.svc.Cities(r.Context())})
}

// RoutesResponse model info
//
//	@Description	daftar route di network, satu entry per route
type RoutesResponse struct {
	Routes []LegResponse `json:"routes"`
}

// Routes
//
//	@Summary		daftar semua route di network
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/navigations/routes [get]
//	@Success		200	{object}	RoutesResponse
func (h *NavigationHandler) Routes(w http.ResponseWriter, r *http.Request) {
	routes := h.svc.Routes(r.Context())
	resp := RoutesResponse{Routes: make([]LegResponse, 0, len(routes))}
	for _, e := range routes {
		resp.Routes = append(resp.Routes, LegResponse{
			FromID:   e.FromNodeID,
			From:     h.svc.CityName(e.FromNodeID),
			ToID:     e.ToNodeID,
			To:       h.svc.CityName(e.ToNodeID),
			Mode:     e.Mode,
			Distance: e.Distance,
			Cost:     e.Cost,
		})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// ModeResponse model info
//
//	@Description	moda transportasi
type ModeResponse struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
}

// Modes
//
//	@Summary		daftar moda transportasi yang didukung
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/navigations/modes [get]
//	@Success		200	{object}	[]ModeResponse
func (h *NavigationHandler) Modes(w http.ResponseWriter, r *http.Request) {
	modes := h.svc.Modes(r.Context())
	resp := make([]ModeResponse, 0, len(modes))
	for _, m := range modes {
		resp = append(resp, ModeResponse{ID: uint8(m), Name: m.String()})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// NearestCityRequest model info
//
//	@Description	request body untuk mencari kota terdekat dari sebuah koordinat
type NearestCityRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

func (s *NearestCityRequest) Bind(r *http.Request) error {
	if s.Lat == nil || s.Lon == nil {
		return errors.New("lat and lon are required")
	}
	return nil
}

// NearestCityResponse model info
//
//	@Description	kota terdekat dan jaraknya dalam km
type NearestCityResponse struct {
	City       datastructure.City `json:"city"`
	DistanceKM float64            `json:"distance_km"`
}

// NearestCity
//
//	@Summary		cari kota terdekat dari koordinat
//	@Description	cari kota terdekat dari koordinat memakai index h3 di badger, diurutkan dengan great circle distance
//	@Tags			navigations
//	@Param			body	body	NearestCityRequest	true	"request body nearest city"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/nearest-city [post]
//	@Success		200	{object}	NearestCityResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) NearestCity(w http.ResponseWriter, r *http.Request) {
	data := &NearestCityRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errRend := h.validator.Struct(*data); errRend != nil {
		render.Render(w, r, errRend)
		return
	}

	city, dist, err := h.svc.NearestCity(r.Context(), *data.Lat, *data.Lon)
	if err != nil {
		render.Render(w, r, ErrorRenderer(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NearestCityResponse{City: city, DistanceKM: dist})
}

// ComponentsResponse model info
//
//	@Description	kelompok kota yang saling terhubung dengan satu moda transportasi
type ComponentsResponse struct {
	Mode       datastructure.Mode `json:"mode" swaggertype:"string"`
	Components [][]CityRef        `json:"components"`
}

// CityRef model info
//
//	@Description	id dan nama kota
type CityRef struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Components
//
//	@Summary		kelompok kota yang saling terhubung dengan moda transportasi yang diminta
//	@Description	strongly connected components (kosaraju) dari route dengan moda yang diminta. Kota di component berbeda tidak punya path
//	@Tags			navigations
//	@Param			mode	query	string	true	"moda transportasi: train, car, airplane"
//	@Produce		application/json
//	@Router			/navigations/components [get]
//	@Success		200	{object}	ComponentsResponse
//	@Failure		400	{object}	ErrResponse
func (h *NavigationHandler) Components(w http.ResponseWriter, r *http.Request) {
	mode, err := datastructure.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	components, err := h.svc.Components(r.Context(), mode)
	if err != nil {
		render.Render(w, r, ErrorRenderer(err))
		return
	}

	resp := ComponentsResponse{Mode: mode, Components: make([][]CityRef, 0, len(components))}
	for _, component := range components {
		refs := make([]CityRef, 0, len(component))
		for _, id := range component {
			refs = append(refs, CityRef{ID: id, Name: h.svc.CityName(id)})
		}
		resp.Components = append(resp.Components, refs)
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}
