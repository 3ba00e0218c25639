package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/storefrontqa/relatedcheck/internal/cli"
	"github.com/storefrontqa/relatedcheck/internal/config"
	"github.com/storefrontqa/relatedcheck/internal/database"
	"github.com/storefrontqa/relatedcheck/internal/handlers"
	"github.com/storefrontqa/relatedcheck/internal/repository"
	"github.com/storefrontqa/relatedcheck/internal/services"
)

var version = "0.1.0"

// buildServerDependencies creates all dependencies needed for the report API server
func buildServerDependencies() (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	// Load server configuration
	deps.ServerConfig = config.LoadServerConfig()

	// Load the validation rule set
	rules, err := config.LoadRuleConfig(os.Getenv)
	if err != nil {
		return deps, fmt.Errorf("invalid rule configuration: %w", err)
	}

	// Create service layer over the run repository
	runRepo := repository.NewRunRepository()
	runService := services.NewRunService(runRepo)

	// Create handlers
	deps.ValidateHandler = handlers.NewValidateHandler(rules)
	deps.RunsHandler = handlers.NewRunsHandler(runService)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the validation report API server",
		Action: func(c *cli.Context) error {
			// Connect to database
			if err := database.Connect(); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()
			log.Println("Connected to database successfully")

			// Run database migrations
			if err := database.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			// Build all server dependencies
			deps, err := buildServerDependencies()
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// CheckCommand returns the check command
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate the related-products section of the target product page",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "store",
				Usage: "Record the run in the history database",
			},
		},
		Action: func(c *cli.Context) error {
			rules, err := config.LoadRuleConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid rule configuration: %w", err)
			}

			target, err := config.LoadTargetConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid target configuration: %w", err)
			}

			deps := internalcli.CheckDependencies{
				Rules:  rules,
				Target: target,
			}

			if c.Bool("store") {
				if err := database.Connect(); err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer database.Close()

				if err := database.RunMigrations(); err != nil {
					return fmt.Errorf("failed to run database migrations: %w", err)
				}

				deps.RunService = services.NewRunService(repository.NewRunRepository())
			}

			report, err := internalcli.RunCheck(deps)
			if err != nil {
				return err
			}

			if !report.OverallPass {
				return cli.Exit("related products validation failed", 1)
			}
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "relatedcheck",
		Usage:   "Related products validation tool",
		Version: version,
		Commands: []*cli.Command{
			CheckCommand(),
			ServeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
