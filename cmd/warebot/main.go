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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	warebot "github.com/poiesic/warebot"
	"github.com/poiesic/warebot/ai"
	"github.com/poiesic/warebot/chat"
	"github.com/poiesic/warebot/core"
	"github.com/poiesic/warebot/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "warebot",
		Usage: "Warehouse inventory assistant over a semantic document index",
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
				Name:   "ingest",
				Usage:  "Ingest a tabular inventory source into the index",
				Action: ingestCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "Path to the inventory source file (.csv or .xlsx)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent embedding workers",
					},
				),
			},
			{
				Name:      "ask",
				Usage:     "Ask a single question over the ingested inventory",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Usage:   "Assistant mode (Inventory, Shipment, Multi-Task)",
						Value:   string(core.ModeInventory),
					},
				),
			},
			{
				Name:   "chat",
				Usage:  "Start an interactive conversation over the ingested inventory",
				Action: chatCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Usage:   "Assistant mode (Inventory, Shipment, Multi-Task)",
						Value:   string(core.ModeInventory),
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags returns the AI service flags shared by every command.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "completion-host",
			Usage: "Completion service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "mxbai-embed-large",
		},
		&cli.StringFlag{
			Name:  "completion-model",
			Usage: "Completion model name",
			Value: "gemma3:latest",
		},
	}
}

func openDatabase(c *cli.Context) (*warebot.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithCompletionHost(c.String("completion-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithCompletionModel(c.String("completion-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := warebot.NewDatabase(c.String("db"), warebot.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []ingestion.Option
	if c.Int("pool-size") > 0 {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	if err := pipeline.Ingest(ctx, c.String("source")); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	count, err := db.Documents().Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Index holds %d documents\n", count)
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	mode, err := core.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	session := chat.NewSession()
	reply, err := db.Answer(ctx, session, question, mode)
	if err != nil && reply == "" {
		return err
	}

	// Turn failures carry their error text as the reply; print it like any answer
	fmt.Println(reply)
	return nil
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()

	mode, err := core.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	assistant, err := db.NewAssistant(chat.WithMode(mode))
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}

	fmt.Printf("warebot %s mode. /clear resets the conversation, /quit exits.\n", mode)

	session := chat.NewSession()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			session.Clear()
			fmt.Println("Conversation cleared.")
			continue
		}

		// Errors become turns; the conversation always continues
		reply, _ := assistant.Ask(ctx, session, line)
		fmt.Println(reply)
	}
	return scanner.Err()
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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
