// Package gpu plays sprite games in a desktop window using ebiten.
package gpu

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bombjack/internal/core"
	"github.com/vovakirdan/bombjack/internal/logging"
	"github.com/vovakirdan/bombjack/internal/platform/round"
	"github.com/vovakirdan/bombjack/internal/platform/sprites"
	"github.com/vovakirdan/bombjack/internal/registry"
	"github.com/vovakirdan/bombjack/internal/storage"
)

var (
	scoreColor   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	bannerColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	clearColor   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	defaultFace  = text.NewGoXFace(basicfont.Face7x13)
	scorePos     = image.Pt(350, 10)
	errNoSprites = errors.New("gpu: game has no sprite draw-list")
)

// Sprite games are drawn in world units on a fixed logical screen.
const (
	screenWidth  = 600
	screenHeight = 650
)

// Options configures a window run. Zero values are usable.
type Options struct {
	Store     *storage.Store // Nil disables score saving
	Player    string
	Sounds    core.Sounds // Nil plays nothing
	Logger    *log.Logger // Nil discards logs
	SheetPath string      // PNG sprite sheet; empty paints a placeholder
	Scale     float64     // Window size multiplier, default 1
	TickRate  int         // Frames per second, default 60
}

func (o Options) withDefaults() Options {
	if o.Sounds == nil {
		o.Sounds = core.Silence{}
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Player == "" {
		o.Player = "player"
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	return o
}

// Window is an ebiten.Game that plays one registry game.
type Window struct {
	sprites   registry.SpriteSource
	opts      Options
	round     *round.Round
	sheet     *ebiten.Image
	projector *sprites.Projector
	keyboard  Keyboard
}

// NewWindow resets the game and prepares its sprite sheet.
func NewWindow(game registry.Game, opts Options) (*Window, error) {
	src, ok := game.(registry.SpriteSource)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errNoSprites, game.ID())
	}
	opts = opts.withDefaults()

	r := round.New(game, round.Options{
		Store:  opts.Store,
		Player: opts.Player,
		Sounds: opts.Sounds,
		Logger: opts.Logger,
	})
	r.Start(core.RuntimeConfig{ScreenW: screenWidth, ScreenH: screenHeight, TickRate: opts.TickRate})

	layout := src.Sheet()
	var img image.Image
	if opts.SheetPath != "" {
		loaded, err := sprites.Load(opts.SheetPath, layout)
		if err != nil {
			return nil, err
		}
		img = loaded
		opts.Logger.Info("sprite sheet loaded", "path", opts.SheetPath)
	} else {
		img = sprites.Placeholder(layout)
		opts.Logger.Info("using placeholder sprite sheet")
	}

	return &Window{
		sprites:   src,
		opts:      opts,
		round:     r,
		sheet:     ebiten.NewImageFromImage(img),
		projector: sprites.NewProjector(screenWidth, screenHeight, screenWidth, screenHeight, layout),
	}, nil
}

// Update runs one platform frame. The game gates its own simulation rate.
func (w *Window) Update() error {
	in := w.keyboard.Actions()
	in.Held = w.keyboard.Snapshot(time.Now())

	if outcome, _ := w.round.Frame(in); outcome == round.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the draw-list in order, then the score and round banners.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	list := w.sprites.DrawList()
	for _, p := range list.Items {
		switch p.Kind {
		case core.PrimitiveSprite:
			w.drawSprite(screen, p)
		case core.PrimitiveRect:
			q := w.projector.Dest(p)
			vector.FillRect(screen, float32(q.X), float32(q.Y), float32(q.W), float32(q.H), sprites.RGBA(p.Color), false)
		}
	}

	drawText(screen, "SCORE "+core.FormatScore(list.Score), scorePos.X, scorePos.Y, scoreColor)

	state := w.round.State()
	switch {
	case state.GameOver:
		drawText(screen, "ROUND CLEAR - R restart, Esc quit", 180, screenHeight/2, bannerColor)
	case state.Paused:
		drawText(screen, "PAUSED", 280, screenHeight/2, bannerColor)
	}
}

func (w *Window) drawSprite(screen *ebiten.Image, p core.Primitive) {
	src := w.projector.Source(p.UV)
	if src.Empty() {
		return
	}
	q := w.projector.Dest(p)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(q.W/float64(src.Dx()), q.H/float64(src.Dy()))
	op.GeoM.Translate(q.X, q.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(w.sheet.SubImage(src).(*ebiten.Image), op)
}

func drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, defaultFace, op)
}

// Layout keeps a fixed logical screen; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens a window and plays game until it is closed or quit.
func Run(game registry.Game, opts Options) error {
	w, err := NewWindow(game, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(screenWidth*w.opts.Scale), int(screenHeight*w.opts.Scale))
	ebiten.SetTPS(w.opts.TickRate)

	w.opts.Logger.Info("window opened", "game", game.ID(), "tps", w.opts.TickRate)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}
	// Closing the window ends the round like a quit
	w.round.Save("close")
	return nil
}
