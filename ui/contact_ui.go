package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/automoto/starfolio/network"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type ContactUI struct {
	UI *ebitenui.UI

	OnSend   func(form network.ContactForm)
	OnGoBack func()

	nameInput    *widget.TextInput
	emailInput   *widget.TextInput
	subjectInput *widget.TextInput
	messageInput *widget.TextInput
	statusLabel  *widget.Label
	sendBtn      *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewContactUI(onSend func(form network.ContactForm), onGoBack func()) *ContactUI {
	ui := &ContactUI{
		OnSend:   onSend,
		OnGoBack: onGoBack,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *ContactUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: bold, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: regular, Size: 15}
	ui.smallFace = &text.GoTextFace{Source: regular, Size: 12}
}

func (ui *ContactUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{8, 9, 20, 235})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 18, Bottom: 18, Left: 22, Right: 22}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{22, 24, 44, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("GET IN TOUCH", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	ui.nameInput = ui.addField(panel, "Name", "Your name")
	ui.emailInput = ui.addField(panel, "Email", "you@example.com")
	ui.subjectInput = ui.addField(panel, "Subject", "What's this about?")
	ui.messageInput = ui.addField(panel, "Message", "Your message")

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	panel.AddChild(ui.buildButtons())
	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// addField appends a labelled text input row to panel.
func (ui *ContactUI) addField(panel *widget.Container, label, placeholder string) *widget.TextInput {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{170, 176, 200, 255},
		}),
	))

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(360, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 44, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{30, 32, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{99, 179, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
	)
	row.AddChild(input)

	panel.AddChild(row)
	return input
}

func (ui *ContactUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.sendBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{70, 60, 180, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{100, 85, 220, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{55, 45, 150, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{45, 45, 60, 255}),
		}),
		widget.ButtonOpts.Text("Send", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{230, 225, 255, 255},
			Pressed:  color.RGBA{200, 190, 240, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSend != nil {
				ui.OnSend(ui.Form())
			}
		}),
	)
	container.AddChild(ui.sendBtn)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	return container
}

// Form returns the current field values.
func (ui *ContactUI) Form() network.ContactForm {
	return network.ContactForm{
		Name:    ui.nameInput.GetText(),
		Email:   ui.emailInput.GetText(),
		Subject: ui.subjectInput.GetText(),
		Message: ui.messageInput.GetText(),
	}
}

// Reset clears every field.
func (ui *ContactUI) Reset() {
	for _, in := range []*widget.TextInput{ui.nameInput, ui.emailInput, ui.subjectInput, ui.messageInput} {
		in.SetText("")
	}
}

func (ui *ContactUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *ContactUI) SetSending(sending bool) {
	if ui.sendBtn != nil {
		ui.sendBtn.GetWidget().Disabled = sending
	}
}

func (ui *ContactUI) Update() {
	ui.UI.Update()
}
