// Package xp implements the ".xp" compressed grid loader: a gzip-framed,
// raw-DEFLATE-compressed fixed binary record format carrying one or more
// CP437 color layers (§4.7). Grounded on core/buffer.go's "decode into a
// caller-owned scratch buffer, then walk fixed records" loading shape,
// with the gzip framing itself read by hand (the format's trailer fields
// are consulted directly) rather than through compress/gzip's Reader,
// matching the spec's explicit byte-offset recipe. Load itself swallows
// every decode failure, same as ccl.Print and ansiterm.Write.
package xp

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"errors"
	"io"

	"github.com/lixenwraith/textmode"
	"github.com/lixenwraith/textmode/ansiterm"
)

var (
	ErrBadMagic  = errors.New("xp: not a gzip stream")
	ErrBadMethod = errors.New("xp: unsupported compression method")
	ErrBadFlags  = errors.New("xp: unsupported gzip flags")
	ErrTooShort  = errors.New("xp: stream too short")
	ErrBadLayers = errors.New("xp: layer count out of range")
)

const (
	gzipMagic0  = 0x1F
	gzipMagic1  = 0x8B
	gzipDeflate = 0x08
	gzipHeaderLen = 10
	gzipTrailerLen = 8

	transparentR, transparentG, transparentB = 255, 0, 255
)

// Load parses a gzip-framed .xp stream and writes its cells into c's grid
// at (baseX, baseY). layerMask selects which layers are drawn: bit i
// gates layer i; pass ^uint32(0) to draw every layer (§4.7).
//
// Load is total: a malformed stream (bad magic, unsupported method/flags,
// a truncated payload, a layer count out of range, or a flate error) is
// swallowed, leaving the console with whatever cells were already written
// before the failure and no indication beyond that. Callers observe
// failure only by inspecting the console's contents, matching
// ansiterm.Write and ccl.Print (§4.14, §7).
func Load(c *textmode.Console, data []byte, baseX, baseY int, layerMask uint32) {
	_ = load(c, data, baseX, baseY, layerMask)
}

func load(c *textmode.Console, data []byte, baseX, baseY int, layerMask uint32) error {
	payload, uncompressedSize, err := ungzip(data)
	if err != nil {
		return err
	}

	r := bytes.NewReader(payload)
	fr := flate.NewReader(r)
	defer fr.Close()

	scratch := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(fr, scratch); err != nil {
		return err
	}

	return parseGrid(c, scratch, baseX, baseY, layerMask)
}

// ungzip validates the gzip header/flags and returns the raw DEFLATE
// payload plus the trailer's declared uncompressed size (§4.7 steps 1-2).
func ungzip(data []byte) (payload []byte, uncompressedSize uint32, err error) {
	if len(data) < gzipHeaderLen+gzipTrailerLen {
		return nil, 0, ErrTooShort
	}
	if data[0] != gzipMagic0 || data[1] != gzipMagic1 {
		return nil, 0, ErrBadMagic
	}
	if data[2] != gzipDeflate {
		return nil, 0, ErrBadMethod
	}
	flags := data[3]
	if flags != 0 {
		return nil, 0, ErrBadFlags
	}

	n := len(data)
	size := binary.LittleEndian.Uint32(data[n-4:])
	payload = data[gzipHeaderLen : n-gzipTrailerLen]
	return payload, size, nil
}

// parseGrid walks the fixed-record payload: a 16-byte header, then
// layerCount layers of width*height 10-byte cell records (§4.7 step 4).
func parseGrid(c *textmode.Console, buf []byte, baseX, baseY int, layerMask uint32) error {
	const headerLen = 16
	const recordLen = 4 + 3 + 3 // cp437_index(u32) + fg(3) + bg(3)

	if len(buf) < headerLen {
		return ErrTooShort
	}
	_ = int32(binary.LittleEndian.Uint32(buf[0:4])) // version, unused
	layerCount := int32(binary.LittleEndian.Uint32(buf[4:8]))
	width := int32(binary.LittleEndian.Uint32(buf[8:12]))
	height := int32(binary.LittleEndian.Uint32(buf[12:16]))

	if layerCount < 1 || layerCount > 9 {
		return ErrBadLayers
	}
	if width < 0 || height < 0 {
		return ErrTooShort
	}

	off := headerLen
	written := false
	for layer := int32(0); layer < layerCount; layer++ {
		visible := layerMask&(1<<uint(layer)) != 0
		for x := int32(0); x < width; x++ {
			for y := int32(0); y < height; y++ {
				if off+recordLen > len(buf) {
					return ErrTooShort
				}
				rec := buf[off : off+recordLen]
				off += recordLen

				if !visible {
					continue
				}
				if writeRecord(c, rec, baseX+int(x), baseY+int(y)) {
					written = true
				}
			}
		}
	}
	if written {
		c.Touch()
	}
	return nil
}

func writeRecord(c *textmode.Console, rec []byte, col, row int) bool {
	cp437Index := binary.LittleEndian.Uint32(rec[0:4]) & 0xFF
	fgR, fgG, fgB := rec[4], rec[5], rec[6]
	bgR, bgG, bgB := rec[7], rec[8], rec[9]

	if bgR == transparentR && bgG == transparentG && bgB == transparentB {
		return false
	}

	cell := c.CharAt(col, row)
	if cell == nil {
		return false
	}

	pal := c.Palette()
	fgIdx := uint8(pal.FindColorMatch(fgR, fgG, fgB))
	bgIdx := uint8(pal.FindColorMatch(bgR, bgG, bgB))

	cell.Glyph = ansiterm.DecodeCP437(byte(cp437Index))
	cell.Color = textmode.PackColor(fgIdx, bgIdx)
	cell.Style = textmode.StyleNone
	return true
}
