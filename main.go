package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/catalog"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/common"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/server"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/session"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/storage"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/suggest"
	"github.com/Deeksha-S-Shettigar/CRE-Property-Search-POC/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")

type config struct {
	ListenAddress string `env:"LISTEN_ADDRESS" envDefault:":8080"`
	DebugAddress  string `env:"DEBUG_ADDRESS" envDefault:":8081"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	RedisUrl      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RabbitUrl     string `env:"RABBIT_URL"`
	Country       string `env:"COUNTRY" envDefault:"us"`
}

func loadCatalog(db *storage.DiskStorage, cat *catalog.Catalog) {
	items, err := db.LoadCatalog()
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		if snap, snapErr := db.LoadSnapshot(); snapErr == nil {
			log.Printf("Recovered %d listings from snapshot", len(snap))
			cat.Replace(snap)
			return
		}
		// serve the explicit "no data" state instead of crashing
		cat.MarkInvalid()
		return
	}
	cat.Replace(items)
	log.Printf("Catalog loaded, %d listings", cat.Len())
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	db := storage.NewDiskStorage(cfg.DataDir)
	cat := catalog.New()
	loadCatalog(db, cat)

	suggester := suggest.NewSuggester()
	suggester.Index(cat.All())

	sessions := session.NewStore(cat)
	stopSweeper := sessions.StartSweeper(time.Minute)
	defer stopSweeper()

	srv := server.NewWebServer(cat, sessions, suggester)
	if cfg.RedisUrl != "" {
		srv.Cache = server.NewCache(cfg.RedisUrl, cfg.RedisPassword, 0)
		log.Printf("Response cache enabled, url: %s", cfg.RedisUrl)
	}
	if cfg.RabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(cfg.RabbitUrl, cfg.Country)
		if err != nil {
			log.Fatalf("Failed to create rabbit tracking: %v", err)
		}
		srv.Tracking = trk
		log.Printf("Tracking enabled, url: %s", cfg.RabbitUrl)
	}

	go func() {
		debugMux := http.NewServeMux()
		debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		debugMux.Handle("/metrics", promhttp.Handler())
		if enableProfiling != nil && *enableProfiling {
			log.Println("Profiling enabled")
			debugMux.HandleFunc("/debug/pprof/", pprof.Index)
			debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
			debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
			debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
			debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		}
		log.Printf("Starting debug server %v", cfg.DebugAddress)
		log.Fatal(http.ListenAndServe(cfg.DebugAddress, debugMux))
	}()

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	httpServer := common.NewServerWithTimeouts(&http.Server{Addr: cfg.ListenAddress, Handler: mux}, timeouts)

	common.RunServerWithShutdown(httpServer, "listing api", timeouts.Shutdown, timeouts.Hook, func(ctx context.Context) error {
		if !cat.Valid() {
			return nil
		}
		return db.SaveSnapshot(cat.All())
	})
}
