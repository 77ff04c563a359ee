// ABOUTME: Entry point for the salesgen dataset generator CLI
// ABOUTME: Routes flag-parsed subcommands to generation, export, and forecast drivers
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/harperreed/salesgen/cli"
	"github.com/harperreed/salesgen/config"
	"github.com/harperreed/salesgen/db"
	"github.com/harperreed/salesgen/logger"
)

const version = "0.2.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/salesgen/salesgen.db)")
	configPath := flag.String("config", "", "Config file path (defaults are built in)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	// Handle version flag
	if *showVersion {
		fmt.Printf("salesgen version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	// A local .env can carry SALESGEN_* overrides
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer zlog.Sync()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "generate":
		database, err := db.OpenDatabase(getDatabasePath(*dbPath))
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer database.Close()

		if err := cli.GenerateCommand(database, cfg, zlog, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "export":
		database, err := db.OpenDatabase(getDatabasePath(*dbPath))
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer database.Close()

		if err := cli.ExportCommand(database, cfg, zlog, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "forecast":
		if len(commandArgs) == 0 {
			fmt.Println("Error: forecast requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		forecastCommand := commandArgs[0]
		forecastArgs := commandArgs[1:]

		switch forecastCommand {
		case "train":
			if err := cli.ForecastTrainCommand(cfg, zlog, forecastArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "predict":
			if err := cli.ForecastPredictCommand(cfg, zlog, forecastArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown forecast command: %s\n\n", forecastCommand)
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDatabasePath(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(xdg.DataHome, "salesgen", "salesgen.db")
}

func printUsage() {
	fmt.Println(`salesgen - synthetic retail sales dataset generator

Usage:
  salesgen [flags] <command>

Commands:
  generate            Synthesize a dataset and write train.json/test.json
  export              Rebuild train.json/test.json from a stored run
  forecast train      Submit a training job to the forecasting service
  forecast predict    Request forecasts and print the raw payload

Flags:
  -version            Show version and exit
  -db-path <path>     Database path (default: ~/.local/share/salesgen/salesgen.db)
  -config <path>      Config file path (defaults are built in)

Run "salesgen <command> -h" for command flags.`)
}
