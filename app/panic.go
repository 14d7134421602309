package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"nvicshell/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	panicFontHeight = 10
	panicFontOffset = 6
)

// showPanic logs a recovered panic and paints it over the framebuffer.
func (sys *system) showPanic(v any, stack []byte) {
	var stackLines []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			stackLines = append(stackLines, line)
		}
	}

	if sys.log != nil {
		sys.log.WriteLineString(fmt.Sprintf("nvicshell panic: %v", v))
		for _, line := range stackLines {
			sys.log.WriteLineString(line)
		}
	}

	disp := sys.h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	if sc, ok := fb.(hal.Scroller); ok {
		sc.SetScroll(0)
	}
	fb.ClearRGB(255, 255, 255)

	lines := []string{
		"nvicshell panic:",
		fmt.Sprintf("chip: %s", sys.fam.Series),
		fmt.Sprintf("panic: %v", v),
	}
	if len(stackLines) > 0 {
		lines = append(lines, "stack:")
		lines = append(lines, stackLines...)
	} else {
		lines = append(lines, "stack: unavailable")
	}

	drawPanicText(fb, lines)
	_ = fb.Present()
}

func drawPanicText(fb hal.Framebuffer, lines []string) {
	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		return
	}

	d := panicDisplay{fb: fb}
	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	maxH := int16(fb.Height())
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+panicFontHeight > maxH {
				return
			}
			chunk, rest := takeRunes(line, cols)
			x := int16(0)
			for _, r := range chunk {
				tinyfont.DrawChar(d, font, x, y+panicFontOffset, r, fg)
				x += fontWidth
			}
			y += panicFontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
