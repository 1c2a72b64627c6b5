// Command dashboard is a local-first job tracking dashboard.
//
// Default mode serves the HTTP API. The -list and -digest flags render
// the same data in the terminal and exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobdash/dashboard/internal/api"
	"github.com/jobdash/dashboard/internal/catalog"
	"github.com/jobdash/dashboard/internal/config"
	"github.com/jobdash/dashboard/internal/db"
	"github.com/jobdash/dashboard/internal/digest"
	"github.com/jobdash/dashboard/internal/notify"
	"github.com/jobdash/dashboard/internal/prefs"
	"github.com/jobdash/dashboard/internal/tracker"
	"github.com/jobdash/dashboard/internal/ui"
	"github.com/jobdash/dashboard/internal/view"
)

func main() {
	listMode := flag.Bool("list", false, "Print the filtered job list and exit")
	digestMode := flag.Bool("digest", false, "Generate (or re-open) today's digest, print it and exit")
	keyword := flag.String("keyword", "", "Keyword filter for -list (title or company substring)")
	location := flag.String("location", "", "Location filter for -list (exact match)")
	sortKey := flag.String("sort", "latest", "Sort for -list: latest, matchScore or salary")
	flag.Parse()

	cfg := config.Load()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Catalog load error: %v", err)
	}

	store, err := db.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Store open error: %v", err)
	}
	defer store.Close()

	prefStore := prefs.NewStore(store)
	trackStore := tracker.NewStore(store)
	gen := digest.NewGenerator(store, cat, prefStore, cfg.DigestSize)

	switch {
	case *listMode:
		runList(cat, prefStore, trackStore, *keyword, *location, *sortKey)
	case *digestMode:
		runDigest(cat, gen)
	default:
		runServer(cfg, cat, prefStore, trackStore, gen)
	}
}

func runList(cat *catalog.Catalog, ps *prefs.Store, ts *tracker.Store, keyword, location, sortKey string) {
	order, err := view.ParseSort(sortKey)
	if err != nil {
		log.Fatalf("Invalid sort: %v", err)
	}

	filters := view.Filters{Keyword: keyword, Location: location}
	entries := view.Results(cat, ps.Get(), ts.Statuses(), filters, order)
	if err := ui.JobTable(entries, ts); err != nil {
		log.Fatalf("Render error: %v", err)
	}
}

func runDigest(cat *catalog.Catalog, gen *digest.Generator) {
	date := gen.Today()
	snap, _, err := gen.Generate(date)
	if err != nil {
		log.Fatalf("Digest error: %v", err)
	}
	ui.Digest(snap, cat, date)
}

func runServer(cfg *config.Config, cat *catalog.Catalog, ps *prefs.Store, ts *tracker.Store, gen *digest.Generator) {
	log.Printf("Starting dashboard: %d catalog jobs", cat.Len())
	log.Printf("HTTP port: %d", cfg.HTTPPort)

	center := notify.NewCenter(cfg.NoticeTTL)
	defer center.Close()

	router := api.NewRouter(cfg, cat, ps, ts, gen, center)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "jobdash - job tracking dashboard\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Modes:\n")
		fmt.Fprintf(os.Stderr, "  Server (default): serve the dashboard HTTP API\n")
		fmt.Fprintf(os.Stderr, "  -list:   print the job list in the terminal\n")
		fmt.Fprintf(os.Stderr, "  -digest: print today's digest in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # serve on HTTP_PORT (8080)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -list -keyword react -sort salary # filtered table\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -digest                           # today's top matches\n", os.Args[0])
	}
}
