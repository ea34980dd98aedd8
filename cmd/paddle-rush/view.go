package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/engine"
	"github.com/lixenwraith/paddle-rush/input"
	"github.com/lixenwraith/paddle-rush/scene"
	"github.com/lixenwraith/paddle-rush/system"
	"github.com/lixenwraith/paddle-rush/vmath"
)

var errQuit = errors.New("quit")

const pixelsPerMeter = 8.0

// keyBindings maps host keys onto the two logical paddle controls
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyA:          input.KeyPaddleLeft,
	ebiten.KeyArrowLeft:  input.KeyPaddleLeft,
	ebiten.KeyD:          input.KeyPaddleRight,
	ebiten.KeyArrowRight: input.KeyPaddleRight,
}

// view is the ebiten render/input host: Update is the per-frame schedule,
// key edges feed the input machine, Draw paints a top-down course view
type view struct {
	game    *engine.Game
	camera  *system.CameraSystem
	machine *input.Machine
	log     zerolog.Logger

	width, height int
	visited       map[scene.NodeID]bool
	score         int
}

func newView(game *engine.Game, camera *system.CameraSystem, machine *input.Machine, log zerolog.Logger) *view {
	return &view{
		game:    game,
		camera:  camera,
		machine: machine,
		log:     log,
		width:   960,
		height:  640,
		visited: make(map[scene.NodeID]bool),
	}
}

// zoneEntered is the game-logic contact callback, runs on the update goroutine
// Entries are idempotent here since the bridge does not deduplicate
func (v *view) zoneEntered(zone scene.NodeID, name string) {
	if v.visited[zone] {
		return
	}
	v.visited[zone] = true
	v.score++
	v.log.Info().Str("zone", name).Int("score", v.score).Msg("zone entered")
}

func (v *view) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	for hostKey, logical := range keyBindings {
		if inpututil.IsKeyJustPressed(hostKey) {
			v.machine.HandleKeyDown(logical)
		}
		if inpututil.IsKeyJustReleased(hostKey) {
			v.machine.HandleKeyUp(logical)
		}
	}

	v.game.Update()
	return nil
}

func (v *view) Draw(screen *ebiten.Image) {
	now := time.Now()

	// View centered on the smoothed camera pivot, not the boat itself
	pivotPos, _ := v.game.Graph.WorldTransform(v.camera.Pivot())
	cx, cz := pivotPos.X(), pivotPos.Z()

	toScreen := func(x, z float64) (float32, float32) {
		sx := float32((x-cx)*pixelsPerMeter) + float32(v.width)/2
		sy := float32((z-cz)*pixelsPerMeter) + float32(v.height)/2
		return sx, sy
	}

	// Zones
	for _, name := range []string{"gate-1", "gate-2", "gate-3", "finish-dock"} {
		id, ok := v.game.Graph.Find(name)
		if !ok {
			continue
		}
		pos, _ := v.game.Graph.WorldTransform(id)
		sx, sy := toScreen(pos.X(), pos.Z())
		radius := 2.5
		if cid, ok := v.game.Graph.Find(name + "-collider"); ok {
			if body := v.game.World.Body(cid); body != nil {
				radius = body.Radius
			}
		}
		col := color.RGBA{60, 120, 200, 255}
		if v.visited[id] {
			col = color.RGBA{60, 200, 90, 255}
		}
		vector.StrokeCircle(screen, sx, sy, float32(radius*pixelsPerMeter), 2, col, true)
	}

	// Boat, drawn from the rendered transform
	if pos, rot, ok := v.game.World.Rendered(v.game.Tracked, now); ok {
		sx, sy := toScreen(pos.X(), pos.Z())
		fwd := vmath.Forward(rot)
		yaw := math.Atan2(fwd.X(), fwd.Z())
		hx := sx + float32(math.Sin(yaw))*14
		hy := sy + float32(math.Cos(yaw))*14
		vector.DrawFilledCircle(screen, sx, sy, 7, color.RGBA{230, 190, 80, 255}, true)
		vector.StrokeLine(screen, sx, sy, hx, hy, 3, color.RGBA{230, 190, 80, 255}, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d  (A/D or arrows paddle, ESC quits)", v.score), 8, 8)
}

func (v *view) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
