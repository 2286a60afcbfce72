package scenes

import (
	"image/color"
	"math"
	"sync"

	"github.com/automoto/starfolio/assets"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/network"
	"github.com/automoto/starfolio/systems"
	"github.com/automoto/starfolio/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Screen-space hit-test area; covers any realistic window.
const (
	minSpaceWidth  = 3840
	minSpaceHeight = 2160
)

// PortfolioScene is the scrolling space portfolio. It keeps its world while
// the contact form is open so returning restores the exact state.
type PortfolioScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	width, height int
	contact       *network.ContactClient
}

func NewPortfolioScene(sc SceneChanger, width, height int) *PortfolioScene {
	return &PortfolioScene{
		sceneChanger: sc,
		width:        width,
		height:       height,
		contact:      network.NewContactClient(cfg.Contact.Endpoint, cfg.Contact.Timeout),
	}
}

func (ps *PortfolioScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.ContactRequested(ps.ecs) {
		ps.sceneChanger.ChangeScene(NewContactScene(ps.sceneChanger, ps))
	}
}

func (ps *PortfolioScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Resize forwards a window size change. Before the first update it only sets
// the initial size.
func (ps *PortfolioScene) Resize(width, height int) {
	if ps.ecs == nil {
		ps.width, ps.height = width, height
		return
	}
	systems.RequestResize(ps.ecs, float64(width), float64(height))
}

func (ps *PortfolioScene) configure() {
	doc, err := assets.LoadResume()
	if err != nil {
		panic("failed to load content: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then everything that reads it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateSwipe)

	// Navigation pushes the scroll offset before the star field moves
	ecs.AddSystem(systems.UpdateNavigation)
	ecs.AddSystem(systems.UpdateStarField)

	ecs.AddSystem(systems.UpdateSections)
	ecs.AddSystem(systems.UpdateTypewriter)
	ecs.AddSystem(systems.UpdateTheme)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateCursor)
	ecs.AddSystem(systems.UpdateDebug)

	// Add renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawStarField)
	ecs.AddRenderer(cfg.Default, systems.DrawSections)
	ecs.AddRenderer(cfg.Default, systems.DrawShip)
	ecs.AddRenderer(cfg.Default, systems.DrawControls)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawCursor)
	ecs.AddRenderer(cfg.Default, systems.DrawThemeFade)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	w, h := float64(ps.width), float64(ps.height)

	// One viewport per section
	navCfg := cfg.Navigation
	if err := doc.RequireSections(int(navCfg.ContentWidthMultiple)); err != nil {
		panic("failed to load content: " + err.Error())
	}

	factory.CreateViewport(ps.ecs, w, h)
	factory.CreateSpace(ps.ecs,
		int(math.Max(w, minSpaceWidth)), int(math.Max(h, minSpaceHeight)),
		cfg.Controls.SpaceCellSize, cfg.Controls.SpaceCellSize)

	_, field, err := factory.CreateStarField(ps.ecs, w, h, cfg.Background.Seed)
	if err != nil {
		panic(err.Error())
	}
	if _, err := factory.CreateNavigation(ps.ecs, navCfg, w, h, field); err != nil {
		panic(err.Error())
	}
	factory.CreateBackground(ps.ecs, navCfg, cfg.Background.Seed)

	factory.CreateControls(ps.ecs)
	systems.LayoutControls(ps.ecs, w, h)

	factory.CreateSections(ps.ecs, doc)
	factory.CreateTheme(ps.ecs, systems.SavedTheme())
	factory.CreateAudio(ps.ecs)
	factory.CreateCursor(ps.ecs)
	factory.CreateDebug(ps.ecs, cfg.Debug.Enabled)
}

// suspend pauses side effects while another scene is on top.
func (ps *PortfolioScene) suspend() {
	if ps.ecs != nil {
		systems.PauseAudio(ps.ecs)
	}
}

// resume undoes suspend.
func (ps *PortfolioScene) resume() {
	if ps.ecs != nil {
		systems.ResumeAudio(ps.ecs)
	}
}

// Shutdown stops the per-frame work and releases audio.
func (ps *PortfolioScene) Shutdown() {
	if ps.ecs == nil {
		return
	}
	systems.StopNavigation(ps.ecs)
	systems.CloseAudio(ps.ecs)
}
