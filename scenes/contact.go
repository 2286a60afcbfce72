package scenes

import (
	"sync"

	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/network"
	"github.com/automoto/starfolio/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ContactScene shows the contact form over a frozen portfolio.
type ContactScene struct {
	sceneChanger SceneChanger
	portfolio    *PortfolioScene
	contactUI    *ui.ContactUI
	once         sync.Once
	shouldGoBack bool
}

func NewContactScene(sc SceneChanger, portfolio *PortfolioScene) *ContactScene {
	return &ContactScene{
		sceneChanger: sc,
		portfolio:    portfolio,
	}
}

func (s *ContactScene) Update() {
	s.once.Do(s.configure)

	s.contactUI.Update()
	for _, key := range cfg.Input.Bindings[cfg.ActionBack].Keys {
		if inpututil.IsKeyJustPressed(key) {
			s.shouldGoBack = true
		}
	}

	// Apply send results on the main goroutine
	client := s.portfolio.contact
	switch client.State() {
	case network.SendInFlight:
		s.contactUI.SetStatus("Sending...")
		s.contactUI.SetSending(true)
	case network.SendDone:
		s.contactUI.SetStatus("Message sent. Thanks!")
		s.contactUI.SetSending(false)
		s.contactUI.Reset()
		client.Acknowledge()
	case network.SendFailed:
		msg := "Could not send message"
		if err := client.LastError(); err != nil {
			msg = err.Error()
		}
		s.contactUI.SetStatus(msg)
		s.contactUI.SetSending(false)
		client.Acknowledge()
	}

	if s.shouldGoBack {
		s.portfolio.resume()
		s.sceneChanger.ChangeScene(s.portfolio)
	}
}

func (s *ContactScene) Draw(screen *ebiten.Image) {
	s.portfolio.Draw(screen)

	if s.contactUI == nil {
		return
	}
	s.contactUI.UI.Draw(screen)
}

// Resize keeps the portfolio in step with the window while the form is open.
func (s *ContactScene) Resize(width, height int) {
	s.portfolio.Resize(width, height)
}

func (s *ContactScene) configure() {
	s.portfolio.suspend()
	s.contactUI = ui.NewContactUI(
		func(form network.ContactForm) { s.onSend(form) },
		func() { s.shouldGoBack = true },
	)
}

func (s *ContactScene) onSend(form network.ContactForm) {
	if err := s.portfolio.contact.Send(form); err != nil {
		s.contactUI.SetStatus(err.Error())
		return
	}
	s.contactUI.SetStatus("Sending...")
	s.contactUI.SetSending(true)
}

func (s *ContactScene) Shutdown() {
	s.portfolio.Shutdown()
}
