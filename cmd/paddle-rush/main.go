package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/audio"
	"github.com/lixenwraith/paddle-rush/config"
	"github.com/lixenwraith/paddle-rush/content"
	"github.com/lixenwraith/paddle-rush/engine"
	"github.com/lixenwraith/paddle-rush/input"
	"github.com/lixenwraith/paddle-rush/system"
)

var configDirFlag = flag.String("config", ".", "Directory containing paddle_rush.cfg.json")

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	tuning, err := config.Load(*configDirFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if lvl, err := zerolog.ParseLevel(tuning.LogLevel); err == nil {
		log = log.Level(lvl)
	}

	graph, world := content.BuildCourse()

	game, err := engine.NewGame(graph, world, engine.NewTimeProvider(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("game setup failed")
	}

	bridge := system.NewContactBridge(graph, game.Queue, log)
	world.SetContactBeginFunc(bridge.HandleContactBegin)

	paddle := system.NewPaddleSystem(game, tuning, log)
	game.AddSystem(paddle)

	camera, err := system.NewCameraSystem(game, tuning, content.CameraNodeName)
	if err != nil {
		log.Fatal().Err(err).Msg("camera setup failed")
	}
	game.AddSystem(camera)

	var audioEngine *audio.Engine
	if tuning.AudioEnabled {
		audioEngine, err = audio.NewEngine()
		if err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing silent")
		}
	} else {
		audioEngine = &audio.Engine{}
	}
	game.AddSystem(system.NewAudioSystem(audioEngine))
	defer audioEngine.Stop()

	view := newView(game, camera, input.NewMachine(paddle), log)
	game.SetZoneEnteredFunc(view.zoneEntered)

	game.Start()
	defer game.Stop()

	ebiten.SetWindowTitle("paddle-rush")
	ebiten.SetWindowSize(960, 640)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(view); err != nil && err != errQuit {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
