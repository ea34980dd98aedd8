// paddle-sandbox is a terminal harness for tuning stroke and camera feel
// without a window. Terminals report no key releases, so each key press is
// given a synthesized release shortly after
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/config"
	"github.com/lixenwraith/paddle-rush/content"
	"github.com/lixenwraith/paddle-rush/engine"
	"github.com/lixenwraith/paddle-rush/input"
	"github.com/lixenwraith/paddle-rush/scene"
	"github.com/lixenwraith/paddle-rush/system"
	"github.com/lixenwraith/paddle-rush/vmath"
)

const (
	frameInterval = 33 * time.Millisecond
	// synthReleaseDelay approximates a key release for edge detection
	synthReleaseDelay = 150 * time.Millisecond
	cellsPerMeter     = 0.5
)

var configDirFlag = flag.String("config", ".", "Directory containing paddle_rush.cfg.json")

func main() {
	flag.Parse()

	logFile, err := os.Create("paddle-sandbox.log")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := zerolog.New(logFile).With().Timestamp().Logger()

	tuning, err := config.Load(*configDirFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	graph, world := content.BuildCourse()

	game, err := engine.NewGame(graph, world, engine.NewTimeProvider(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	bridge := system.NewContactBridge(graph, game.Queue, log)
	world.SetContactBeginFunc(bridge.HandleContactBegin)

	paddle := system.NewPaddleSystem(game, tuning, log)
	game.AddSystem(paddle)

	camera, err := system.NewCameraSystem(game, tuning, content.CameraNodeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	game.AddSystem(camera)

	machine := input.NewMachine(paddle)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	score := 0
	game.SetZoneEnteredFunc(func(zone scene.NodeID, name string) {
		score++
		log.Info().Str("zone", name).Msg("zone entered")
	})

	game.Start()
	defer game.Stop()

	quit := make(chan struct{})
	go pollKeys(screen, machine, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			game.Update()
			draw(screen, game, camera, score)
		}
	}
}

// pollKeys forwards paddle key edges to the input machine
// Unhandled keys fall through untouched, matching the consumed-or-not contract
func pollKeys(screen tcell.Screen, machine *input.Machine, quit chan struct{}) {
	release := func(k input.Key) {
		time.AfterFunc(synthReleaseDelay, func() {
			machine.HandleKeyUp(k)
		})
	}

	for {
		ev := screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch {
		case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q':
			close(quit)
			return
		case key.Key() == tcell.KeyLeft || key.Rune() == 'a':
			if machine.HandleKeyDown(input.KeyPaddleLeft) {
				release(input.KeyPaddleLeft)
			}
		case key.Key() == tcell.KeyRight || key.Rune() == 'd':
			if machine.HandleKeyDown(input.KeyPaddleRight) {
				release(input.KeyPaddleRight)
			}
		}
	}
}

func draw(screen tcell.Screen, game *engine.Game, camera *system.CameraSystem, score int) {
	screen.Clear()
	width, height := screen.Size()

	pivotPos, _ := game.Graph.WorldTransform(camera.Pivot())

	toCell := func(x, z float64) (int, int) {
		cx := int((x-pivotPos.X())*cellsPerMeter) + width/2
		cy := int((z-pivotPos.Z())*cellsPerMeter) + height/2
		return cx, cy
	}

	zoneStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for _, name := range []string{"gate-1", "gate-2", "gate-3", "finish-dock"} {
		if id, ok := game.Graph.Find(name); ok {
			pos, _ := game.Graph.WorldTransform(id)
			cx, cy := toCell(pos.X(), pos.Z())
			if cx >= 0 && cx < width && cy >= 0 && cy < height {
				screen.SetContent(cx, cy, 'O', nil, zoneStyle)
			}
		}
	}

	if pos, rot, ok := game.World.Rendered(game.Tracked, time.Now()); ok {
		cx, cy := toCell(pos.X(), pos.Z())
		if cx >= 0 && cx < width && cy >= 0 && cy < height {
			fwd := vmath.Forward(rot)
			screen.SetContent(cx, cy, headingRune(fwd.X(), fwd.Z()), nil,
				tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
		}
	}

	status := fmt.Sprintf(" score %d | a/d paddle, q quits ", score)
	for i, r := range status {
		if i < width {
			screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
		}
	}

	screen.Show()
}

// headingRune picks an arrow for the dominant horizontal heading
func headingRune(x, z float64) rune {
	if math.Abs(x) > math.Abs(z) {
		if x > 0 {
			return '>'
		}
		return '<'
	}
	if z > 0 {
		return 'v'
	}
	return '^'
}
