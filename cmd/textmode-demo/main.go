// Command textmode-demo drives a Console from a file given on the command
// line, refreshing it on a ticker and on keypress, and on quit writes the
// composited framebuffer out as a PNG. It exists to exercise the textmode
// API end to end, not as part of the library itself.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/textmode"
	"github.com/lixenwraith/textmode/font"
	"github.com/lixenwraith/textmode/palette"
	"github.com/lixenwraith/textmode/xp"
)

const (
	cols, rows = 80, 25
	cellScale  = 2
	outW       = cols * font.CharW * cellScale
	outH       = rows * font.CharH * cellScale
	frameTick  = 16 * time.Millisecond
)

func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile("textmode-demo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== textmode-demo started ===")
	return f
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to textmode-demo.log")
	out := flag.String("out", "textmode-demo.png", "PNG path written on quit")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: textmode-demo [-debug] [-out path.png] <file.xp|file.txt>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	console, err := buildConsole(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", path, err)
		os.Exit(1)
	}

	fb := make([]byte, outW*outH*4)
	console.Outbuf(fb, outW, outH, outW*4)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, console)

	if err := writePNG(*out, fb, outW, outH); err != nil {
		log.Printf("failed to write %s: %v", *out, err)
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	log.Printf("wrote %s", *out)
}

// buildConsole constructs a Console sized cols x rows and loads path into
// it: .xp files go through the compressed grid loader, anything else is
// treated as plain UTF-8 text, one line per row.
func buildConsole(path string) (*textmode.Console, error) {
	c := textmode.NewConsole(palette.NewPreset(palette.Vintage), font.Builtin)
	c.Size(cols, rows)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xp") {
		xp.Load(c, data, 0, 0, ^uint32(0))
		return c, nil
	}

	c.Cls()
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		c.Println(scanner.Text())
	}
	return c, nil
}

// run drives the render loop until 'q', Escape, or Ctrl-C is pressed:
// a ticker advances the blink clock and re-renders, any other key also
// forces an immediate render so interaction feels responsive.
func run(screen tcell.Screen, console *textmode.Console) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameTick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			console.Render()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			console.Update(dt)
			console.Render()
		}
	}
}

func writePNG(path string, fb []byte, w, h int) error {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, fb)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
