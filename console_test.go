package textmode

import (
	"testing"

	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/palette"
)

func newTestConsole(cols, rows int) *Console {
	c := NewConsole(palette.NewPreset(palette.Vintage), font.Builtin)
	c.Size(cols, rows)
	return c
}

// S1 Hello bold.
func TestHelloBold(t *testing.T) {
	c := newTestConsole(20, 5)
	c.Cls()
	c.Print("AB")
	c.AddStyle(StyleBold)
	c.Print("C")
	c.Newline()
	c.Println("D")

	cases := []struct {
		col, row int
		glyph    rune
		style    Style
	}{
		{0, 0, 'A', StyleNone},
		{1, 0, 'B', StyleNone},
		{2, 0, 'C', StyleBold},
		{0, 1, 'D', StyleBold},
	}
	for _, tt := range cases {
		cell := c.CharAt(tt.col, tt.row)
		if cell.Glyph != tt.glyph {
			t.Errorf("(%d,%d) glyph = %q, want %q", tt.col, tt.row, cell.Glyph, tt.glyph)
		}
		if cell.Style != tt.style {
			t.Errorf("(%d,%d) style = %v, want %v", tt.col, tt.row, cell.Style, tt.style)
		}
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 20; col++ {
			switch {
			case row == 0 && col < 3:
				continue
			case row == 1 && col == 0:
				continue
			}
			cell := c.CharAt(col, row)
			if cell.Glyph != ' ' {
				t.Errorf("(%d,%d) expected default space, got %q", col, row, cell.Glyph)
			}
		}
	}

	if c.CursorColumn() != 0 || c.CursorRow() != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", c.CursorColumn(), c.CursorRow())
	}
}

// S2 Scroll.
func TestScroll(t *testing.T) {
	c := newTestConsole(4, 2)
	c.Cls()
	c.Println("abcd")
	c.Println("efgh")
	c.Println("ijkl")

	want := [2]string{"efgh", "ijkl"}
	for row, expect := range want {
		for col, r := range expect {
			cell := c.CharAt(col, row)
			if cell.Glyph != r {
				t.Errorf("(%d,%d) = %q, want %q", col, row, cell.Glyph, r)
			}
		}
	}
	if c.CursorColumn() != 0 || c.CursorRow() != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", c.CursorColumn(), c.CursorRow())
	}
}

// S3 Save/restore: restore pops color state AND cursor position.
func TestSaveRestore(t *testing.T) {
	c := newTestConsole(10, 2)
	c.Cls()
	c.Fg(1) // red
	c.Save()
	c.Fg(4) // blue
	c.Locate(1, 0)
	c.Print("X")
	c.Restore()
	c.Print("Y")

	y := c.CharAt(0, 0)
	if y.Glyph != 'Y' {
		t.Fatalf("expected Y at (0,0), got %q", y.Glyph)
	}
	fg, _ := UnpackColor(y.Color)
	if fg != 1 {
		t.Errorf("Y fg = %d, want 1 (red)", fg)
	}

	x := c.CharAt(1, 0)
	if x.Glyph != 'X' {
		t.Fatalf("expected X at (1,0), got %q", x.Glyph)
	}
	fgX, _ := UnpackColor(x.Color)
	if fgX != 4 {
		t.Errorf("X fg = %d, want 4 (blue)", fgX)
	}
}

// S7 Kernel at width 7.
func TestKernelWidth7(t *testing.T) {
	k := buildGaussianKernel(7)
	want := []float64{0.00598, 0.060626, 0.24174, 0.383308, 0.24174, 0.060626, 0.00598}
	if len(k) != len(want) {
		t.Fatalf("kernel length = %d, want %d", len(k), len(want))
	}
	const tol = 1e-4
	var sum float64
	for i, v := range k {
		if diff := v - want[i]; diff > tol || diff < -tol {
			t.Errorf("k[%d] = %v, want ~%v", i, v, want[i])
		}
		sum += v
	}
	if diff := sum - 1; diff > tol || diff < -tol {
		t.Errorf("kernel sum = %v, want 1", sum)
	}
}

// A render with no intervening mutation must be idempotent: the second
// call reports no pending update.
func TestRenderIdempotent(t *testing.T) {
	c := newTestConsole(8, 4)
	c.Outbuf(make([]byte, 64*32*4), 64, 32, 64*4)
	c.Cls()
	c.Print("hello")

	c.Render()
	if !c.HasPendingUpdate() {
		t.Fatal("first render after mutation should report a pending update")
	}

	c.Render()
	if c.HasPendingUpdate() {
		t.Fatal("second render with no mutation should report no pending update")
	}
}

// Only cells that actually changed are marked dirty between renders.
func TestRenderDiffOnlyDirtyCells(t *testing.T) {
	c := newTestConsole(8, 4)
	c.Outbuf(make([]byte, 64*32*4), 64, 32, 64*4)
	c.Cls()
	c.Print("hello")
	c.Render()

	c.Locate(0, 0)
	c.Print("H")
	c.invalidateChars()

	if !c.charDirty[0] {
		t.Error("cell (0,0) should be dirty after rewrite")
	}
	for i := 1; i < len(c.charDirty); i++ {
		if c.charDirty[i] {
			t.Errorf("cell index %d unexpectedly dirty", i)
		}
	}
}

// The state stack never pops below the base state, and push/pop round
// trips restore the exact prior values.
func TestStateStackRoundTrip(t *testing.T) {
	c := newTestConsole(4, 4)
	c.Cls()
	c.Restore() // underflow from base state must be a silent no-op
	if c.stateCount != 1 {
		t.Fatalf("stateCount = %d after underflow restore, want 1", c.stateCount)
	}

	c.Fg(2)
	c.Bg(3)
	c.AddStyle(StyleBold)
	c.Save()
	c.Fg(9)
	c.SetStyle(StyleUnderline)
	c.Restore()

	if c.CurrentFg() != 2 || c.CurrentBg() != 3 || c.CurrentStyle() != StyleBold {
		t.Errorf("state after restore = fg=%d bg=%d style=%v, want fg=2 bg=3 style=bold",
			c.CurrentFg(), c.CurrentBg(), c.CurrentStyle())
	}
}

func TestHitMapsPixelToCell(t *testing.T) {
	c := newTestConsole(4, 4)
	c.Outbuf(make([]byte, 64*64*4), 64, 64, 64*4)
	c.Render()

	col, row, ok := c.Hit(c.marginX+1, c.marginY+1)
	if !ok || col != 0 || row != 0 {
		t.Errorf("Hit near origin = (%d,%d,%v), want (0,0,true)", col, row, ok)
	}

	_, _, ok = c.Hit(-1, -1)
	if ok {
		t.Error("Hit outside the margin should report false")
	}
}
