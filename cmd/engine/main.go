package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"

	_ "github.com/lintang-b-s/modalroute/docs"
	"github.com/lintang-b-s/modalroute/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/modalroute/pkg/kv"
	"github.com/lintang-b-s/modalroute/pkg/network"
	"github.com/lintang-b-s/modalroute/pkg/server/rest"
	"github.com/lintang-b-s/modalroute/pkg/server/rest/service"
	"github.com/lintang-b-s/modalroute/pkg/snap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	listenAddr  = flag.String("listenaddr", ":5000", "server listen address")
	networkFile = flag.String("f", "", "network definition file (.json, .bin, .zst). empty = built-in five city network")
	kvDir       = flag.String("kvdir", "", "badger directory for the city location index. empty = in memory")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

//	@title			modalroute API
//	@version		1.0
//	@description	multi modal city routing engine in go

//	@contact.name	lintang birda saputra
//	@description 	multi modal city routing engine in go. Dijkstra shortest path restricted to one transport mode

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	n, err := network.Load(*networkFile)
	if err != nil {
		log.Fatal(err)
	}
	recordMemProfile(memprofile, "load_network")

	kvDB, err := kv.OpenKVDB(*kvDir)
	if err != nil {
		log.Fatal(err)
	}
	defer kvDB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := kvDB.BuildH3IndexedCities(ctx, n.Cities()); err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	routingAlgorithm := routingalgorithm.NewRouteAlgorithm(n.Graph())
	snapper := snap.NewCitySnapper(kvDB)

	navigatorSvc := service.NewNavigationService(n, routingAlgorithm, snapper)
	recordMemProfile(memprofile, "service_init")

	rest.NavigatorRouter(r, navigatorSvc, m)

	fmt.Printf("\n%d cities, %d routes loaded. Dijkstra Ready!!", n.NumCities(), len(n.Routes()))
	fmt.Printf("\nserver started at %s\n", *listenAddr)

	log.Fatal(http.ListenAndServe(*listenAddr, r))
}

func recordMemProfile(memprofile *string, name string) {
	if *memprofile != "" {
		path := strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
