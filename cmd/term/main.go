package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/cbodonnell/blockfall/pkg/tetris"
	"github.com/cbodonnell/blockfall/pkg/version"
	"github.com/cbodonnell/blockfall/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	logLevel := flag.String("log-level", "", "Log level (default $BLOCKFALL_LOG_LEVEL or info)")
	logFile := flag.String("log-file", "", "file to write logs to, the terminal is taken by the game")
	db := flag.String("db", "", "leaderboard url (default $BLOCKFALL_DATABASE_URL or sqlite://blockfall.db), \"none\" to not save scores")
	mute := flag.Bool("mute", false, "disable sound effects")
	seed := flag.Uint64("seed", 0, "seed for the piece sequence (0 picks one)")
	flag.Parse()

	parsedLogLevel, err := config.LogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open log file: %v", err))
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	log.Info("Starting terminal client version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var lb leaderboard.Leaderboard
	if *db != "none" {
		lb, err = leaderboard.Open(ctx, config.DatabaseURL(*db))
		if err != nil {
			log.Error("Failed to open leaderboard, scores will not be saved: %v", err)
		} else {
			defer lb.Close(context.Background())
		}
	}

	engineOpts := tetris.EngineOptions{}
	if *seed != 0 {
		engineOpts.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}
	sess, err := session.New(session.Options{
		EngineOptions: engineOpts,
		Leaderboard:   lb,
		Logger:        logger,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}

	var cuePlayer term.CuePlayer
	if !*mute {
		speaker, err := term.NewSpeaker()
		if err != nil {
			// Non-fatal, the game can run without sound
			log.Warn("Audio initialization failed: %v", err)
		} else {
			defer speaker.Close()
			cuePlayer = speaker
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Sprintf("Failed to create screen: %v", err))
	}
	if err := screen.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize screen: %v", err))
	}
	defer screen.Fini()

	app, err := term.NewApp(term.NewAppOptions{
		Screen:  screen,
		Session: sess,
		Audio:   cuePlayer,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create app: %v", err))
	}
	if err := app.Run(ctx); err != nil {
		log.Error("Game stopped: %v", err)
	}
}
