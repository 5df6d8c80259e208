package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/cbodonnell/blockfall/client/audio"
	"github.com/cbodonnell/blockfall/client/game"
	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/cbodonnell/blockfall/pkg/sound"
	"github.com/cbodonnell/blockfall/pkg/tetris"
	"github.com/cbodonnell/blockfall/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "", "Log level (default $BLOCKFALL_LOG_LEVEL or info)")
	db := flag.String("db", "", "leaderboard url (default $BLOCKFALL_DATABASE_URL or sqlite://blockfall.db), \"none\" to not save scores")
	debug := flag.Bool("debug", false, "show the debug overlay")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	seed := flag.Uint64("seed", 0, "seed for the piece sequence (0 picks one)")
	flag.Parse()

	parsedLogLevel, err := config.LogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())
	ctx := context.Background()

	var lb leaderboard.Leaderboard
	if *db != "none" {
		lb, err = leaderboard.Open(ctx, config.DatabaseURL(*db))
		if err != nil {
			// the game is playable without a leaderboard
			log.Error("Failed to open leaderboard, scores will not be saved: %v", err)
		} else {
			defer lb.Close(ctx)
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

	player, err := audio.NewPlayer(audio.NewPlayerOptions{
		Bank:  sound.NewBank(),
		Muted: *mute,
	})
	if err != nil {
		log.Error("Failed to start audio: %v", err)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:   *debug,
		Session: sess,
		Audio:   player,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(objects.ScreenWidth, objects.ScreenHeight)
	ebiten.SetWindowTitle("Blockfall")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
