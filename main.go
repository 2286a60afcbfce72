package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/fonts"
	"github.com/automoto/starfolio/scenes"
	"github.com/automoto/starfolio/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
	if r, ok := g.scene.(scenes.Resizer); ok && !g.bounds.Empty() {
		r.Resize(g.bounds.Dx(), g.bounds.Dy())
	}
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPortfolioScene(g, config.C.Width, config.C.Height)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if s, ok := g.scene.(scenes.Shutdowner); ok {
			s.Shutdown()
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout renders at the window size; the scene debounces size changes.
func (g *Game) Layout(width, height int) (int, int) {
	if width < 1 || height < 1 {
		return config.C.Width, config.C.Height
	}
	g.bounds = image.Rect(0, 0, width, height)
	if r, ok := g.scene.(scenes.Resizer); ok {
		r.Resize(width, height)
	}
	return width, height
}

func main() {
	debug := flag.Bool("debug", false, "draw control hitboxes and navigation state")
	endpoint := flag.String("contact-endpoint", config.Contact.Endpoint, "URL the contact form posts to (empty only logs)")
	width := flag.Int("width", config.C.Width, "initial window width")
	height := flag.Int("height", config.C.Height, "initial window height")
	flag.Parse()

	config.Debug.Enabled = *debug
	config.Contact.Endpoint = *endpoint
	config.C.Width, config.C.Height = *width, *height

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	// Initialize persistence; the portfolio reads the saved theme
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
