// Package main provides the solar API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kelseyhightower/envconfig"

	"go.ngs.io/solar-api/internal/adapter/store/deltat"
	"go.ngs.io/solar-api/internal/adapter/store/elevation"
	httpHandler "go.ngs.io/solar-api/internal/http"
	"go.ngs.io/solar-api/internal/usecase"
)

const version = "0.1.0"

// Config is the environment configuration of the server.
type Config struct {
	Port string `default:"8080"`

	// DEMPath points at a GEBCO-style NetCDF elevation grid used to
	// default observer elevation. Can be a GCS FUSE mount. Optional.
	DEMPath string `envconfig:"DEM_PATH"`

	// DeltaTTable points at a CSV delta-T table (year,delta_t_s).
	// Optional; without it delta-T is estimated from polynomials.
	DeltaTTable string `envconfig:"DELTA_T_TABLE"`
}

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("solar-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Solar API server...")
	log.Printf("Port: %s", cfg.Port)

	// Initialize elevation store (optional).
	var elevationStore elevation.Store
	if cfg.DEMPath != "" {
		log.Printf("Initializing DEM elevation store")
		log.Printf("  DEM path: %s", cfg.DEMPath)
		elevationStore = elevation.NewLocalStore(cfg.DEMPath)
	} else {
		log.Printf("DEM elevation store disabled (requests without elevation assume sea level)")
	}

	// Initialize delta-T source.
	deltaTSource, err := deltat.NewSource(cfg.DeltaTTable)
	if err != nil {
		log.Fatalf("Failed to load delta-T table: %v", err)
	}
	if cfg.DeltaTTable != "" {
		log.Printf("Delta-T table: %s", cfg.DeltaTTable)
	} else {
		log.Printf("Delta-T table not configured (using polynomial estimate)")
	}

	// Initialize use case.
	solarUC := usecase.NewSolarUseCase(elevationStore, deltaTSource)

	// Setup router.
	router := httpHandler.SetupRouter(solarUC)

	// Start server.
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/solar/position")
	log.Printf("  - GET /v1/solar/events")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Solar API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  solar-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println("  DEM_PATH                Path to GEBCO-style NetCDF DEM (optional, can be GCS FUSE mount)")
	fmt.Println("  DELTA_T_TABLE           Path to CSV delta-T table (optional)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  solar-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port with a DEM")
	fmt.Println("  PORT=3000 DEM_PATH=/mnt/dem/gebco_2024.nc solar-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                Health check")
	fmt.Println("  GET /metrics               Prometheus metrics")
	fmt.Println("  GET /v1/solar/position     Topocentric solar position")
	fmt.Println("  GET /v1/solar/events       Sunrise, transit, sunset")
	fmt.Println()
}
