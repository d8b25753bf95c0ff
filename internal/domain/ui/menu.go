package ui

import (
	"github.com/younwookim/playertest/internal/domain/event"
)

// DefaultSpacing is the vertical distance between consecutive buttons.
const DefaultSpacing = 60

// ButtonDrawer paints a single button.
type ButtonDrawer interface {
	DrawButton(b *Button)
}

// Menu owns an ordered column of buttons.
type Menu struct {
	buttons []*Button
	spacing int
}

// NewMenu creates an empty menu. A non-positive spacing uses DefaultSpacing.
func NewMenu(spacing int) *Menu {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	return &Menu{spacing: spacing}
}

// Add appends a button to the bottom of the column.
func (m *Menu) Add(b *Button) {
	m.buttons = append(m.buttons, b)
}

// Buttons returns the buttons in layout order.
func (m *Menu) Buttons() []*Button {
	return m.buttons
}

// Len returns the number of buttons
func (m *Menu) Len() int {
	return len(m.buttons)
}

// Layout centres the column horizontally. The first button sits a third of
// the area height above the vertical centre.
func (m *Menu) Layout(areaW, areaH int) {
	y := areaH/2 - areaH/3
	for _, b := range m.buttons {
		b.SetPos(areaW/2-b.W/2, y)
		y += m.spacing
	}
}

// HandleEvent forwards the event to every button.
func (m *Menu) HandleEvent(ev event.Event) {
	for _, b := range m.buttons {
		b.HandleEvent(ev)
	}
}

// Clicked resolves a left mouse press into the action of the button under
// the cursor. Any other event yields ActionNone.
func (m *Menu) Clicked(ev event.Event) Action {
	press, ok := ev.(event.MouseButtonDown)
	if !ok || press.Button != event.MouseLeft {
		return ActionNone
	}
	for _, b := range m.buttons {
		if b.Contains(press.X, press.Y) {
			return b.Action
		}
	}
	return ActionNone
}

// Draw paints every button in order.
func (m *Menu) Draw(d ButtonDrawer) {
	for _, b := range m.buttons {
		d.DrawButton(b)
	}
}
