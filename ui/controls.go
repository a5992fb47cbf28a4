package ui

import "github.com/pthm-cable/turret/geom"

// Target is the state the controls read and toggle.
type Target interface {
	Size() int
	Selected() int
	SelectNext() int
	SelectPrev() int
	RealTime() bool
	ToggleRealTime() bool
}

// Controls holds the candidate selector and the speed toggle.
type Controls struct {
	target Target
	prev   *Button
	next   *Button
	speed  *Button
}

// NewControls creates the buttons in the top-left corner.
func NewControls(target Target) *Controls {
	c := &Controls{target: target}
	c.prev = NewButton("<", geom.Vec2{X: 5, Y: 5}, func(*Button) {
		c.target.SelectPrev()
		c.refresh()
	})
	c.next = NewButton(">", geom.Vec2{X: 25, Y: 5}, func(*Button) {
		c.target.SelectNext()
		c.refresh()
	})
	c.speed = NewButton("Speed Up", geom.Vec2{X: 5, Y: 30}, func(*Button) {
		c.target.ToggleRealTime()
		c.refresh()
	})
	c.refresh()
	return c
}

// refresh blanks a selector arrow at its end of the range and names the
// speed toggle after what it will do.
func (c *Controls) refresh() {
	sel := c.target.Selected()

	c.prev.Text = "<"
	if sel == 0 {
		c.prev.Text = " "
	}
	c.next.Text = ">"
	if sel >= c.target.Size()-1 {
		c.next.Text = " "
	}

	c.speed.Text = "Speed Up"
	if !c.target.RealTime() {
		c.speed.Text = "Slow Down"
	}
}

// Buttons returns the buttons in draw order.
func (c *Controls) Buttons() []*Button {
	return []*Button{c.prev, c.next, c.speed}
}

// Update feeds the pointer to every button. Labels are refreshed first since
// the selection may also change from the keyboard.
func (c *Controls) Update(p Pointer) {
	c.refresh()
	for _, b := range c.Buttons() {
		b.Update(p)
	}
}

// Draw draws every button.
func (c *Controls) Draw() {
	for _, b := range c.Buttons() {
		b.Draw()
	}
}
