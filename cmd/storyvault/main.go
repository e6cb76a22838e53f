// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // the default timezone must resolve without a host tz database

	"github.com/poiesic/storyvault"
	"github.com/poiesic/storyvault/ai"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "storyvault",
		Usage: "Ingest uploaded documents into a vector-searchable story table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Process all files currently in the intake directory in one pass",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "base",
						Aliases: []string{"b"},
						Usage:   "Base directory holding uploaded_docs, success, and failure folders",
						Value:   "UserStories",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the SQLite database file (default: stories.db under the base directory)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "api-key",
						Usage: "Embedding service credential",
						Value: "none",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-call timeout for embedding requests (0 disables)",
						Value: 30 * time.Second,
					},
					&cli.StringFlag{
						Name:  "timezone",
						Usage: "Named timezone for record timestamps",
						Value: storyvault.DefaultTimezone,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithAPIKey(c.String("api-key")),
		ai.WithTimeout(c.Duration("timeout")),
	)

	opts := []storyvault.Option{
		storyvault.WithAIConfig(cfg),
		storyvault.WithTimezone(c.String("timezone")),
	}
	if dbPath := c.String("db"); dbPath != "" {
		opts = append(opts, storyvault.WithDatabasePath(dbPath))
	}

	vault, err := storyvault.New(c.String("base"), opts...)
	if err != nil {
		return err
	}
	defer vault.Close()

	pipeline, err := vault.NewPipeline()
	if err != nil {
		return err
	}

	summary, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	for _, failure := range summary.Failed {
		fmt.Printf("failed: %s (%v)\n", failure.FileName, failure.Reason)
	}
	if summary.Inserted > 0 {
		fmt.Printf("%d files inserted into the story table.\n", summary.Inserted)
	} else {
		fmt.Println("No new files inserted.")
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}
