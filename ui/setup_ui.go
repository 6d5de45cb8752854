package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/stickfight/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Setup is the choice the setup screen edits.
type Setup struct {
	Arena  cfg.ArenaID
	BestOf int
}

// CycleArena moves to the next arena, wrapping around.
func (s *Setup) CycleArena() {
	s.Arena = (s.Arena + 1) % cfg.ArenaCount
	if !s.Arena.Valid() {
		s.Arena = 0
	}
}

// CycleBestOf moves to the next match format, wrapping around. An unknown
// format restarts at the first option.
func (s *Setup) CycleBestOf() {
	opts := cfg.Match.BestOfOptions
	for i, n := range opts {
		if n == s.BestOf {
			s.BestOf = opts[(i+1)%len(opts)]
			return
		}
	}
	s.BestOf = opts[0]
}

// SetupUI holds the ebitenui interface for the match setup screen
type SetupUI struct {
	UI    *ebitenui.UI
	Setup *Setup

	OnStart func()
	// Describe returns the one-line feature text of an arena.
	Describe func(cfg.ArenaID) string

	arenaLabel   *widget.Label
	featureLabel *widget.Label
	bestOfLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSetupUI creates the setup screen for the given choice.
func NewSetupUI(setup *Setup, describe func(cfg.ArenaID) string, onStart func()) *SetupUI {
	sui := &SetupUI{
		Setup:    setup,
		OnStart:  onStart,
		Describe: describe,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.SetupMenu.TitleSize,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.SetupMenu.NormalSize,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.SetupMenu.SmallSize,
	}
}

func (sui *SetupUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.SetupMenu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.SetupMenu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Window.Title, &sui.titleFace, &widget.LabelColor{
			Idle: cfg.SetupMenu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.arenaLabel = sui.newValueLabel()
	contentContainer.AddChild(sui.buildRow("Arena", sui.arenaLabel, func() {
		sui.Setup.CycleArena()
		sui.UpdateUI()
	}))

	sui.featureLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: cfg.SetupMenu.LabelColor,
		}),
	)
	contentContainer.AddChild(sui.featureLabel)

	sui.bestOfLabel = sui.newValueLabel()
	contentContainer.AddChild(sui.buildRow("Match", sui.bestOfLabel, func() {
		sui.Setup.CycleBestOf()
		sui.UpdateUI()
	}))

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 36)),
		widget.ButtonOpts.Image(buttonImage(cfg.SetupMenu.StartIdle, cfg.SetupMenu.StartHover, cfg.SetupMenu.ButtonPressed)),
		widget.ButtonOpts.Text("FIGHT", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStart != nil {
				sui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	for _, line := range controlsHelp() {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &sui.smallFace, &widget.LabelColor{
				Idle: cfg.SetupMenu.LabelColor,
			}),
		))
	}

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SetupUI) newValueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.SetupMenu.TitleColor,
		}),
	)
}

// buildRow lays out a caption, the current value and a button that cycles it.
func (sui *SetupUI) buildRow(caption string, value *widget.Label, onChange func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(caption+":", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.SetupMenu.LabelColor,
		}),
	))
	row.AddChild(value)
	row.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(buttonImage(cfg.SetupMenu.ButtonIdle, cfg.SetupMenu.ButtonHover, cfg.SetupMenu.ButtonPressed)),
		widget.ButtonOpts.Text("Change", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onChange()
		}),
	))
	return row
}

func buttonImage(idle, hover, pressed color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(hover),
		Pressed:  image.NewNineSliceColor(pressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// controlsHelp describes both fighters' bindings.
func controlsHelp() []string {
	lines := make([]string, 0, len(cfg.Input.Players)+1)
	for i, b := range cfg.Input.Players {
		lines = append(lines, fmt.Sprintf("P%d  move %s/%s  jump %s  punch %s  kick %s  special %s",
			i+1,
			b.Key(cfg.ActionMoveLeft), b.Key(cfg.ActionMoveRight), b.Key(cfg.ActionJump),
			b.Key(cfg.ActionPunch), b.Key(cfg.ActionSecondary), b.Key(cfg.ActionSpecial)))
	}
	lines = append(lines, fmt.Sprintf("%s pause   %s next round   %s setup",
		cfg.Input.Pause, cfg.Input.Confirm, cfg.Input.BackToMenu))
	return lines
}

// UpdateUI refreshes the labels from the current choice.
func (sui *SetupUI) UpdateUI() {
	arena := sui.Setup.Arena
	if sui.arenaLabel != nil {
		sui.arenaLabel.Label = arena.String()
	}
	if sui.featureLabel != nil && sui.Describe != nil {
		sui.featureLabel.Label = sui.Describe(arena)
	}
	if sui.bestOfLabel != nil {
		sui.bestOfLabel.Label = fmt.Sprintf("Best of %d", sui.Setup.BestOf)
	}
}

// Update calls the UI's Update method
func (sui *SetupUI) Update() {
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
