package textmode

// CharAt returns a pointer into the grid for direct mutation. Callers
// using this instead of the higher-level text API must call Touch
// afterward so the next Render notices the change (§4.4).
func (c *Console) CharAt(col, row int) *CharData {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return nil
	}
	return &c.grid[row*c.cols+col]
}

// Characters returns a slice view of the live grid, row-major.
func (c *Console) Characters() []CharData {
	return c.grid
}

// Touch marks the console dirty so the next Render re-validates every
// cell against the cache, needed after direct CharAt mutation.
func (c *Console) Touch() {
	c.validated = false
}

func (c *Console) writeCell(col, row int, glyph rune) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	st := c.top()
	c.grid[row*c.cols+col] = CharData{
		Glyph: glyph,
		Color: PackColor(st.Fg, st.Bg),
		Style: st.Style,
	}
	c.validated = false
}

// Print writes text (UTF-8) starting at the cursor, advancing the column
// after each codepoint and wrapping to a newline at the right edge.
// Out-of-bounds writes (row already past the last row) are silently
// dropped; the cursor still advances (§4.4, §7).
func (c *Console) Print(text string) {
	for _, r := range text {
		c.printRune(r)
	}
}

// PrintRune writes a single already-decoded codepoint.
func (c *Console) PrintRune(r rune) {
	c.printRune(r)
}

func (c *Console) printRune(r rune) {
	if r == '\n' {
		c.Newline()
		return
	}
	st := c.top()
	c.writeCell(st.Col, st.Row, r)
	st.Col++
	if st.Col >= c.cols {
		c.Newline()
	}
}

// Println prints text followed by a newline.
func (c *Console) Println(text string) {
	c.Print(text)
	c.Newline()
}

// Newline moves the cursor to column 0 of the next row, scrolling the
// grid up by one row if that would run past the last row (§4.4).
func (c *Console) Newline() {
	st := c.top()
	st.Col = 0
	st.Row++
	if st.Row >= c.rows {
		c.scrollUp()
		st.Row = c.rows - 1
	}
}

func (c *Console) scrollUp() {
	if c.rows <= 1 {
		for i := range c.grid[:c.cols] {
			c.grid[i] = defaultCell()
		}
		c.dirtyAllChars = true
		c.validated = false
		return
	}
	copy(c.grid, c.grid[c.cols:])
	last := c.grid[(c.rows-1)*c.cols : c.rows*c.cols]
	for i := range last {
		last[i] = defaultCell()
	}
	c.dirtyAllChars = true
	c.validated = false
}

// Cls sets every cell to the default and resets state to the default
// (§4.4).
func (c *Console) Cls() {
	c.cls()
	c.validated = false
}

func (c *Console) cls() {
	for i := range c.grid {
		c.grid[i] = defaultCell()
	}
	c.states[0] = State{Fg: 8, Bg: 0}
	c.stateCount = 1
	c.dirtyAllChars = true
}

// Locate sets both cursor coordinates; out-of-range values (including -1)
// leave the corresponding coordinate unchanged (§4.4).
func (c *Console) Locate(col, row int) {
	c.Column(col)
	c.Row(row)
}

// Column sets the cursor column if in range.
func (c *Console) Column(col int) {
	if col < 0 || col >= c.cols {
		return
	}
	c.top().Col = col
}

// Row sets the cursor row if in range.
func (c *Console) Row(row int) {
	if row < 0 || row >= c.rows {
		return
	}
	c.top().Row = row
}

// CursorColumn and CursorRow read the current cursor position.
func (c *Console) CursorColumn() int { return c.top().Col }
func (c *Console) CursorRow() int    { return c.top().Row }

// FillRect writes ch into every cell of the w x h rectangle at (x,y)
// using the current fg/bg/style. Out-of-bounds cells are silently
// skipped.
func (c *Console) FillRect(x, y, w, h int, ch rune) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.writeCell(col, row, ch)
		}
	}
}
