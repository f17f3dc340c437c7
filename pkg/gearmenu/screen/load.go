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
	saveCols = 5
	saveRows = 2

	slideTop     = "top"
	slideGrid    = "grid"
	slideMessage = "message"
)

var (
	statusRect  = layout.Rect{X: 0, Y: 0, W: 600, H: 60}
	loadRect    = layout.Rect{X: 600, Y: 0, W: 200, H: 60}
	saveRect    = layout.Rect{X: 100, Y: 250, W: 600, H: 90}
	messageRect = layout.Rect{X: 30, Y: 430, W: 470, H: 60}
)

// LoadScreen lists the save slots. The save data itself is not read; the slots
// carry placeholder names and the second row is shown disabled.
type LoadScreen struct {
	status  *widget.Window
	load    *widget.Window
	saves   *widget.SelectionGrid
	message *widget.Window
	slides  *anim.Track
}

func NewLoadScreen(assets Assets) (Screen, error) {
	saves, err := widget.NewSelectionGrid(saveCols, saveRows, assets.Cursor)
	if err != nil {
		return nil, fmt.Errorf("save grid: %w", err)
	}

	for n := 0; n < saveCols*saveRows; n++ {
		label := widget.NewLabel(i18n.GetStringWithData("save_slot", map[string]interface{}{"Number": n + 1}), assets.Font)
		label.Align = constants.TextAlignCenter
		label.Disabled = n/saveCols > 0
		if err := saves.SetCellWidget(n%saveCols, n/saveCols, label); err != nil {
			return nil, fmt.Errorf("save slot %d: %w", n+1, err)
		}
	}

	load := widget.NewLabel(i18n.GetString("action_load"), assets.Font)
	load.Align = constants.TextAlignCenter

	slides := anim.NewTrack()
	slides.Add(slideTop, assets.SlideInOffset, assets.SlideInStep)
	slides.Add(slideGrid, assets.SlideInOffset, assets.SlideInStep)
	slides.Add(slideMessage, assets.SlideInOffset, assets.SlideInStep)

	return &LoadScreen{
		status:  widget.NewWindow(widget.NewLabel(i18n.GetString("status_checking"), assets.Font)),
		load:    widget.NewWindow(load),
		saves:   saves,
		message: widget.NewWindow(widget.NewLabel(i18n.GetString("message_end_of_world"), assets.Font)),
		slides:  slides,
	}, nil
}

// Enter replays the entrance animation.
func (s *LoadScreen) Enter() {
	s.slides.Reset()
}

func (s *LoadScreen) Saves() *widget.SelectionGrid {
	return s.saves
}

func (s *LoadScreen) Slides() *anim.Track {
	return s.slides
}

func (s *LoadScreen) Update(f input.Frame) ID {
	s.saves.HandleInput(f)

	if f.Pressed(constants.VirtualButtonSelect) {
		s.slides.Reset()
	} else {
		s.slides.Advance()
	}

	if f.Pressed(constants.VirtualButtonB) {
		return Title
	}
	return None
}

func (s *LoadScreen) Render(dc *widget.DrawContext) {
	top := s.slides.Offset(slideTop)
	grid := s.slides.Offset(slideGrid)
	message := s.slides.Offset(slideMessage)

	s.status.Render(dc, statusRect.Translate(-top, 0))
	s.load.Render(dc, loadRect.Translate(top, 0))
	s.saves.Render(dc, saveRect.Translate(grid, 0))
	s.message.Render(dc, messageRect.Translate(-message, 0))
}
