package textmode

// State is the cursor/color/style state that save/restore push and pop
// (§3 State).
type State struct {
	Fg, Bg uint8
	Col, Row int
	Style  Style
}

// top returns a pointer to the active state (always valid: stateCount is
// never allowed below 1).
func (c *Console) top() *State {
	return &c.states[c.stateCount-1]
}

// Save duplicates the top state onto the stack. Silent no-op on overflow
// (§4.4, §7).
func (c *Console) Save() {
	if c.stateCount >= MaxStackDepth {
		return
	}
	c.states[c.stateCount] = c.states[c.stateCount-1]
	c.stateCount++
}

// Restore pops the state stack. Silent no-op on underflow; state [0] is
// never popped below 1 (§4.4, §7).
func (c *Console) Restore() {
	if c.stateCount <= 1 {
		return
	}
	c.stateCount--
}

// Fg sets the foreground color of the top state, clamped to [0,16).
func (c *Console) Fg(idx uint8) {
	if idx > 15 {
		idx = 15
	}
	c.top().Fg = idx
}

// Bg sets the background color of the top state, clamped to [0,16).
func (c *Console) Bg(idx uint8) {
	if idx > 15 {
		idx = 15
	}
	c.top().Bg = idx
}

// SetStyle replaces the top state's style flags outright.
func (c *Console) SetStyle(s Style) {
	c.top().Style = s
}

// AddStyle ORs flags into the top state's style.
func (c *Console) AddStyle(s Style) {
	c.top().Style |= s
}

// ClearStyle clears flags from the top state's style.
func (c *Console) ClearStyle(s Style) {
	c.top().Style &^= s
}

// CurrentFg, CurrentBg, CurrentStyle read the top state.
func (c *Console) CurrentFg() uint8    { return c.top().Fg }
func (c *Console) CurrentBg() uint8    { return c.top().Bg }
func (c *Console) CurrentStyle() Style { return c.top().Style }
