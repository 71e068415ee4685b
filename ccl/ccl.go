// Package ccl implements a small angle-bracket markup language for driving
// a Console's cell-writing API from a tagged UTF-8 string: color/style tags
// that save/restore the console's state stack, and a handful of HTML-style
// entities. Grounded on terminal/output.go's buffered-writer interpreter
// loop, retargeted from "write escape sequences" to "call Console methods".
package ccl

import "github.com/lixenwraith/textmode"

// colorIndex maps CCL color names to the 16-entry palette indices, in the
// classic CGA/EGA order also used by palette/presets.go and ansiterm.
var colorIndex = map[string]uint8{
	"black": 0, "red": 1, "green": 2, "orange": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "lgrey": 7,
	"grey": 8, "lred": 9, "lgreen": 10, "yellow": 11,
	"lblue": 12, "lmagenta": 13, "lcyan": 14, "white": 15,
}

const entityMaxLen = 16

var entities = map[string]rune{
	"lt":  '<',
	"gt":  '>',
	"amp": '&',
}

// applyTag mutates the console's top state for an opening or self-closing
// tag. Unknown tag names have no effect (§4.5).
func applyTag(c *textmode.Console, name string) {
	if len(name) > 3 && name[:3] == "on_" {
		if idx, ok := colorIndex[name[3:]]; ok {
			c.Bg(idx)
		}
		return
	}
	if idx, ok := colorIndex[name]; ok {
		c.Fg(idx)
		return
	}
	switch name {
	case "b", "strong":
		c.AddStyle(textmode.StyleBold)
	case "u":
		c.AddStyle(textmode.StyleUnderline)
	case "blink":
		c.AddStyle(textmode.StyleBlink)
	case "shiny":
		c.AddStyle(textmode.StyleShiny)
	}
}

func isTagNameByte(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isLowerLetter(r rune) bool {
	// Intentionally accepts only lowercase a-z: the literal source this
	// behavior is drawn from checks (ch >= 'a' && ch <= 'z') twice instead
	// of adding an uppercase/digit branch. Entities outside this range are
	// simply never recognized, which matches the observed behavior.
	return (r >= 'a' && r <= 'z') || (r >= 'a' && r <= 'z')
}

// Print interprets markup and writes the resulting text to c, exactly as
// Println does, without the trailing newline.
func Print(c *textmode.Console, markup string) {
	interpret(c, markup)
}

// Println interprets markup, writes it to c, then emits a newline.
func Println(c *textmode.Console, markup string) {
	interpret(c, markup)
	c.Newline()
}

func interpret(c *textmode.Console, markup string) {
	runes := []rune(markup)
	i := 0
	n := len(runes)

	for i < n {
		switch runes[i] {
		case '<':
			next := i + 1
			if next >= n {
				return // unterminated '<' at EOF: stop (§4.5)
			}
			if runes[next] == '/' {
				j, ok := scanClosingTag(runes, next+1)
				if !ok {
					return
				}
				col, row := c.CursorColumn(), c.CursorRow()
				c.Restore()
				c.Locate(col, row)
				i = j
				continue
			}
			name, j, selfClose, ok := scanOpeningTag(runes, next)
			if !ok {
				return
			}
			c.Save()
			applyTag(c, name)
			if selfClose {
				c.Restore()
			}
			i = j
			continue
		case '&':
			j, emitted, wellFormed := scanEntity(runes, i+1)
			if wellFormed {
				// A syntactically valid &name; is always consumed,
				// whether or not the name is recognized (§4.5: unknown
				// entities are silently dropped, not reprinted).
				if emitted != 0 {
					c.PrintRune(emitted)
				}
				i = j
				continue
			}
			// Malformed (no terminating ';' reachable): drop just the
			// '&' and resume normal scanning.
			i++
			continue
		default:
			c.PrintRune(runes[i])
			i++
		}
	}
}

// scanClosingTag reads a name (possibly empty) up to '>'. Mismatched names
// are accepted (the caller always restores); `</foo/>`-shaped input is
// rejected as malformed.
func scanClosingTag(runes []rune, start int) (next int, ok bool) {
	i := start
	for i < len(runes) && isTagNameByte(runes[i]) {
		i++
	}
	if i >= len(runes) {
		return 0, false
	}
	if runes[i] != '>' {
		return 0, false
	}
	return i + 1, true
}

// scanOpeningTag reads a tag name up to '>' or the "/>" self-close marker.
func scanOpeningTag(runes []rune, start int) (name string, next int, selfClose bool, ok bool) {
	i := start
	for i < len(runes) && isTagNameByte(runes[i]) {
		i++
	}
	name = string(runes[start:i])
	if i >= len(runes) {
		return "", 0, false, false
	}
	if runes[i] == '/' {
		if i+1 >= len(runes) || runes[i+1] != '>' {
			return "", 0, false, false
		}
		return name, i + 2, true, true
	}
	if runes[i] != '>' {
		return "", 0, false, false
	}
	return name, i + 1, false, true
}

// scanEntity reads an entity name (lowercase letters only, per the
// preserved bug described on isLowerLetter) up to ';'. wellFormed reports
// whether a terminating ';' was actually reached; an unrecognized but
// well-formed name is consumed with emitted==0 (dropped, not reprinted).
func scanEntity(runes []rune, start int) (next int, emitted rune, wellFormed bool) {
	i := start
	for i < len(runes) && i-start < entityMaxLen && isLowerLetter(runes[i]) {
		i++
	}
	if i >= len(runes) || runes[i] != ';' {
		return 0, 0, false
	}
	name := string(runes[start:i])
	return i + 1, entities[name], true
}
