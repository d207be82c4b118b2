// cmd/cosbind/main.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"cosbind/internal/logging"
	"cosbind/internal/pipeline"
)

func pipelineFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "pipeline",
		Aliases:  []string{"p"},
		Usage:    "Path to the pipeline YAML definition",
		Required: true,
		EnvVars:  []string{"COSBIND_PIPELINE"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		logging.Log.Warn().Err(err).Msg("could not load .env file")
	}

	app := &cli.App{
		Name:  "cosbind",
		Usage: "Build object-storage topology graphs from pipeline definitions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"COSBIND_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logging.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "lint",
				Usage:  "Load and validate a pipeline definition",
				Flags:  []cli.Flag{pipelineFlag()},
				Action: lint,
			},
			{
				Name:  "build",
				Usage: "Build the topology graph and emit it as JSON",
				Flags: []cli.Flag{
					pipelineFlag(),
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Write the graph JSON to a file instead of stdout",
					},
				},
				Action: build,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Log.Fatal().Err(err).Msg("cosbind failed")
	}
}

func lint(c *cli.Context) error {
	cfg, err := pipeline.Load(c.String("pipeline"))
	if err != nil {
		return err
	}
	if err := pipeline.Validate(cfg); err != nil {
		return err
	}
	logging.Log.Info().
		Str("pipeline", cfg.Pipeline.Name).
		Msg("pipeline definition is valid")
	return nil
}

func build(c *cli.Context) error {
	cfg, err := pipeline.Load(c.String("pipeline"))
	if err != nil {
		return err
	}
	if err := pipeline.Validate(cfg); err != nil {
		return err
	}
	pipeline.Normalize(cfg)

	topo, err := pipeline.Build(cfg)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(topo, "", "  ")
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	raw = append(raw, '\n')

	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write graph: %w", err)
		}
		logging.Log.Info().
			Str("pipeline", cfg.Pipeline.Name).
			Int("operators", len(topo.Operators())).
			Str("out", out).
			Msg("graph written")
		return nil
	}

	if _, err := os.Stdout.Write(raw); err != nil {
		return err
	}
	logging.Log.Info().
		Str("pipeline", cfg.Pipeline.Name).
		Int("operators", len(topo.Operators())).
		Msg("graph built")
	return nil
}
