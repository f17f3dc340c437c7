package screen

import (
	"fmt"

	"github.com/sevengears/gearmenu/pkg/gearmenu/anim"
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/i18n"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
)

const (
	titleContinue = iota
	titleNewGame
	titleConfig
	titleEntries
)

var (
	headingRect = layout.Rect{X: 200, Y: 80, W: 400, H: 80}
	entriesRect = layout.Rect{X: 275, Y: 300, W: 250, H: 180}
)

// TitleScreen is the first page: a heading and a vertical Continue/New Game/Config menu.
type TitleScreen struct {
	heading *widget.Window
	entries *widget.SelectionGrid
	slide   *anim.SlideIn
}

func NewTitleScreen(assets Assets) (Screen, error) {
	entries, err := widget.NewSelectionGrid(1, titleEntries, assets.Cursor)
	if err != nil {
		return nil, fmt.Errorf("title menu: %w", err)
	}

	keys := [titleEntries]string{"title_continue", "title_new_game", "title_config"}
	for row, key := range keys {
		label := widget.NewLabel(i18n.GetString(key), assets.Font)
		label.Align = constants.TextAlignCenter
		label.Disabled = row == titleConfig
		if err := entries.SetCellWidget(0, row, label); err != nil {
			return nil, fmt.Errorf("title entry %s: %w", key, err)
		}
	}

	heading := widget.NewLabel(i18n.GetString("title_heading"), assets.headingFont())
	heading.Align = constants.TextAlignCenter

	return &TitleScreen{
		heading: widget.NewWindow(heading),
		entries: entries,
		slide:   anim.NewSlideIn(assets.SlideInOffset, assets.SlideInStep),
	}, nil
}

func (s *TitleScreen) Enter() {
	s.slide.Reset()
}

func (s *TitleScreen) Update(f input.Frame) ID {
	s.entries.HandleInput(f)
	s.slide.Advance()

	if !f.Pressed(constants.VirtualButtonA) {
		return None
	}
	switch row, _ := s.entries.Selection(); row {
	case titleContinue, titleNewGame:
		return Load
	}
	return None
}

func (s *TitleScreen) Render(dc *widget.DrawContext) {
	offset := s.slide.Value()
	s.heading.Render(dc, headingRect.Translate(0, -offset))
	s.entries.Render(dc, entriesRect.Translate(0, offset))
}
