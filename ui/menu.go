package ui

import (
	"bytes"
	"image/color"
	"sync"

	cfg "github.com/automoto/lockstrike/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Button describes one menu entry.
type Button struct {
	Label   string
	OnClick func()
}

// Menu is a centered ebitenui panel with a title, optional info lines and a
// column of buttons. The mouse works through ebitenui; arrow keys and Enter
// go through Navigate.
type Menu struct {
	UI *ebitenui.UI

	buttons []*widget.Button
	lines   []*widget.Label
	sel     Selection

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

var (
	faceSourceOnce sync.Once
	faceSource     *text.GoTextFaceSource
)

func goRegular() *text.GoTextFaceSource {
	faceSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		faceSource = src
	})
	return faceSource
}

// NewMenu builds a menu. An opaque menu fills the screen with the menu
// background; otherwise only the panel is drawn over the running game.
func NewMenu(title string, lines []string, buttons []Button, opaque bool) *Menu {
	m := &Menu{}
	m.loadFonts()

	labels := make([]string, len(buttons))
	actions := make([]func(), len(buttons))
	for i, b := range buttons {
		labels[i] = b.Label
		actions[i] = b.OnClick
	}
	m.sel = NewSelection(labels, actions)

	m.buildUI(title, lines, buttons, opaque)
	m.refresh()
	return m
}

func (m *Menu) loadFonts() {
	src := goRegular()
	m.titleFace = &text.GoTextFace{Source: src, Size: 36}
	m.normalFace = &text.GoTextFace{Source: src, Size: 18}
	m.smallFace = &text.GoTextFace{Source: src, Size: 14}
}

func (m *Menu) buildUI(title string, lines []string, buttons []Button, opaque bool) {
	// Root container with AnchorLayout to fill the screen
	var rootContainer *widget.Container
	if opaque {
		rootContainer = widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
			widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		)
	} else {
		rootContainer = widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &m.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	for _, line := range lines {
		label := widget.NewLabel(
			widget.LabelOpts.Text(line, &m.smallFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 200, 255},
			}),
		)
		m.lines = append(m.lines, label)
		panel.AddChild(label)
	}

	for i, b := range buttons {
		index := i
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight)),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(b.Label, &m.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 220, 150, 255},
				Pressed: color.RGBA{40, 20, 0, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.sel.Select(index)
				m.refresh()
				m.sel.Activate()
			}),
		)
		m.buttons = append(m.buttons, button)
		panel.AddChild(button)
	}

	rootContainer.AddChild(panel)
	m.UI = &ebitenui.UI{Container: rootContainer}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// SetLabel changes the text of button i.
func (m *Menu) SetLabel(i int, label string) {
	m.sel.SetLabel(i, label)
	m.refresh()
}

// SetLine changes the text of info line i.
func (m *Menu) SetLine(i int, line string) {
	if i < 0 || i >= len(m.lines) {
		return
	}
	m.lines[i].Label = line
}

// Navigate moves the keyboard selection and activates it on select. Back
// activates the last button, which is always the way out of a menu.
func (m *Menu) Navigate(up, down, sel, back bool) {
	switch {
	case up:
		m.sel.Move(-1)
	case down:
		m.sel.Move(1)
	}
	m.refresh()

	if back && m.sel.Len() > 0 {
		m.sel.Select(m.sel.Len() - 1)
		m.refresh()
		m.sel.Activate()
		return
	}
	if sel {
		m.sel.Activate()
	}
}

func (m *Menu) Update() {
	m.UI.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}

// refresh pushes the selection labels into the button widgets.
func (m *Menu) refresh() {
	for i, button := range m.buttons {
		if textWidget := button.Text(); textWidget != nil {
			textWidget.Label = m.sel.Display(i)
		}
	}
}
