// Package main is the entry point for Pixel Crawler.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/pixelcrawler/internal/assets"
	"github.com/samdwyer/pixelcrawler/internal/audio"
	"github.com/samdwyer/pixelcrawler/internal/devtools"
	"github.com/samdwyer/pixelcrawler/internal/game"
	"github.com/samdwyer/pixelcrawler/internal/gfx"
	"github.com/samdwyer/pixelcrawler/internal/telemetry"
	"github.com/samdwyer/pixelcrawler/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_PIXELCRAWLER_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Dump {
		if err := dump(ctx, cfg); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	if cfg.Renderer == game.RendererTUI && !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("The terminal frontend needs a terminal; try -renderer %s", game.RendererEbiten)
	}

	// The frontend owns the screen from here on
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Printf("Starting Pixel Crawler %s (renderer %s)", game.Version, cfg.Renderer)

	// Initialize telemetry
	tcfg := telemetry.ConfigFromEnv()
	tcfg.Version = game.Version
	log.Printf("Telemetry: %s", tcfg)
	shutdown, err := telemetry.Setup(ctx, tcfg)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx, cfg); err != nil {
		log.Printf("Game error: %v", err)
		fmt.Fprintf(os.Stderr, "pixelcrawler: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg game.Config) error {
	logger := log.Default()
	catalog := assets.NewCatalog(os.DirFS(cfg.AssetDir), assets.Manifest(), logger)

	var sound audio.Player = audio.Nop{}
	if cfg.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Warning: audio unavailable: %v", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	g, err := game.New(cfg, game.Options{Catalog: catalog, Sound: sound, Logger: logger})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	switch cfg.Renderer {
	case game.RendererEbiten:
		return gfx.Run(ctx, g, logger)
	default:
		screen, err := ui.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		defer screen.Close()
		err = ui.NewApp(screen).Run(ctx, g)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}

// dump prints a generated dungeon, colored when stdout is a terminal.
func dump(ctx context.Context, cfg game.Config) error {
	deps, err := game.LoadDeps(cfg.TuningPath, nil)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := game.NewWorld(ctx, seed, deps)
	return devtools.Dump(os.Stdout, w, term.IsTerminal(int(os.Stdout.Fd())))
}
