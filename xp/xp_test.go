package xp

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"testing"

	"github.com/lixenwraith/textmode"
	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/palette"
)

// buildStream assembles a minimal valid .xp stream: a hand-written gzip
// header/trailer around a raw DEFLATE payload, exactly per §4.7's
// byte-offset recipe (no compress/gzip writer involved, since the loader
// itself never uses compress/gzip either).
func buildStream(t *testing.T, payload []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("flate.NewWriter: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("flate write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("flate close: %v", err)
	}

	var buf bytes.Buffer
	buf.Write([]byte{0x1F, 0x8B, 0x08, 0x00}) // magic, method, flags
	buf.Write([]byte{0, 0, 0, 0})             // mtime
	buf.Write([]byte{0, 0})                   // xfl, os
	buf.Write(compressed.Bytes())

	var trailer [8]byte
	// bytes 0-3: CRC, unused by the loader; left zero.
	binary.LittleEndian.PutUint32(trailer[4:], uint32(len(payload)))
	buf.Write(trailer[:])

	return buf.Bytes()
}

func buildRecord(cp437 uint32, fgR, fgG, fgB, bgR, bgG, bgB byte) []byte {
	rec := make([]byte, 10)
	binary.LittleEndian.PutUint32(rec[0:4], cp437)
	rec[4], rec[5], rec[6] = fgR, fgG, fgB
	rec[7], rec[8], rec[9] = bgR, bgG, bgB
	return rec
}

func TestLoadSingleLayerWithTransparentCell(t *testing.T) {
	var payload bytes.Buffer
	header := make([]byte, 16)
	binary.LittleEndian.PutUint32(header[0:4], 1) // version
	binary.LittleEndian.PutUint32(header[4:8], 1) // layerCount
	binary.LittleEndian.PutUint32(header[8:12], 2) // width
	binary.LittleEndian.PutUint32(header[12:16], 1) // height
	payload.Write(header)

	payload.Write(buildRecord(0x41, 255, 255, 255, 0, 0, 0))   // (0,0) opaque 'A'
	payload.Write(buildRecord(0x42, 255, 255, 255, 255, 0, 255)) // (1,0) transparent bg

	stream := buildStream(t, payload.Bytes())

	c := textmode.NewConsole(palette.NewPreset(palette.Vintage), font.Builtin)
	c.Size(4, 4)

	if err := load(c, stream, 1, 1, ^uint32(0)); err != nil {
		t.Fatalf("load: %v", err)
	}

	cell := c.CharAt(1, 1)
	if cell.Glyph != 'A' {
		t.Errorf("(1,1) glyph = %q, want 'A'", cell.Glyph)
	}
	fg, bg := textmode.UnpackColor(cell.Color)
	if fg != 15 || bg != 0 {
		t.Errorf("(1,1) fg,bg = %d,%d, want white(15),black(0)", fg, bg)
	}

	skipped := c.CharAt(2, 1)
	if skipped.Glyph != ' ' {
		t.Errorf("(2,1) should be untouched (transparent bg), got %q", skipped.Glyph)
	}
}

func TestLoadLayerMaskHidesLayer(t *testing.T) {
	var payload bytes.Buffer
	header := make([]byte, 16)
	binary.LittleEndian.PutUint32(header[0:4], 1)
	binary.LittleEndian.PutUint32(header[4:8], 2) // two layers
	binary.LittleEndian.PutUint32(header[8:12], 1)
	binary.LittleEndian.PutUint32(header[12:16], 1)
	payload.Write(header)
	payload.Write(buildRecord(0x41, 255, 0, 0, 0, 0, 0))   // layer 0
	payload.Write(buildRecord(0x42, 0, 255, 0, 0, 0, 0))   // layer 1

	stream := buildStream(t, payload.Bytes())

	c := textmode.NewConsole(palette.NewPreset(palette.Vintage), font.Builtin)
	c.Size(2, 2)

	// Only layer 0 visible: bit 1 (layer 1) cleared.
	if err := load(c, stream, 0, 0, 1); err != nil {
		t.Fatalf("load: %v", err)
	}

	cell := c.CharAt(0, 0)
	if cell.Glyph != 'A' {
		t.Errorf("expected layer 0's 'A' to win since layer 1 is masked out, got %q", cell.Glyph)
	}
}

// TestLoadSwallowsMalformedStream exercises the public, void Load: a
// truncated stream must not panic and must leave the console untouched
// rather than surfacing an error.
func TestLoadSwallowsMalformedStream(t *testing.T) {
	c := textmode.NewConsole(palette.NewPreset(palette.Vintage), font.Builtin)
	c.Size(2, 2)

	Load(c, []byte{0x00, 0x01, 0x02}, 0, 0, ^uint32(0))

	cell := c.CharAt(0, 0)
	if cell.Glyph != ' ' {
		t.Errorf("expected console untouched after malformed stream, got %q", cell.Glyph)
	}
}
