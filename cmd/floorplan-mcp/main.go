package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/floorplan-geometry/internal/config"
	"github.com/ironsheep/floorplan-geometry/internal/pipeline"
	"github.com/ironsheep/floorplan-geometry/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := ""
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("floorplan-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("floorplan-mcp - MCP server for floorplan geometry extraction")
			fmt.Println()
			fmt.Println("Usage: floorplan-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v       Print version information")
			fmt.Println("  --help, -h          Print this help message")
			fmt.Println("  --config <path>     Load configuration from a TOML file")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  FLOORPLAN_THINNING         Thinning strategy (zhang-suen, guo-hall)")
			fmt.Println("  FLOORPLAN_OUTPUT_DIR       Directory for written artifacts")
			fmt.Println("  FLOORPLAN_LOG_LEVEL=debug  Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		case "--config":
			if len(os.Args) > 2 {
				configPath = os.Args[2]
			}
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Strategy resolution is a startup check; a misconfigured thinning
	// algorithm must never surface as a per-request failure.
	pipe, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("Pipeline setup error: %v", err)
	}

	if os.Getenv("FLOORPLAN_LOG_LEVEL") == "debug" {
		log.Printf("Floorplan MCP Server v%s (built %s, commit %s), thinning=%s",
			Version, BuildTime, GitCommit, pipe.ThinnerName())
	}

	srv := server.New(pipe)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
