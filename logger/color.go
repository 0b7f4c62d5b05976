package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode controls whether console lines carry ANSI color sequences.
type ColorMode int

const (
	// ColorAuto colors output only when the writer is a color-capable terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces 24-bit color regardless of the writer.
	ColorAlways
	// ColorNever writes plain text.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "true", "on":
		return ColorAlways, nil
	case "never", "false", "off":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q", s)
}

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// levelColors holds the tag and message colors of one level.
type levelColors struct {
	tag, msg RGB
}

var palette = map[Level]levelColors{
	ErrorLevel: {tag: RGB{255, 46, 99}, msg: RGB{255, 46, 99}},
	WarnLevel:  {tag: RGB{249, 237, 105}, msg: RGB{249, 237, 105}},
	InfoLevel:  {tag: RGB{48, 227, 202}, msg: RGB{255, 255, 255}},
	DebugLevel: {tag: RGB{82, 97, 107}, msg: RGB{82, 97, 107}},
}

// levelStyles colors the tag and message of one level.
type levelStyles struct {
	profile  termenv.Profile
	tag, msg termenv.Color
}

// renderTag wraps s in the tag color. The text itself is never altered.
func (st levelStyles) renderTag(s string) string {
	return st.render(s, st.tag)
}

// renderMsg wraps s in the message color.
func (st levelStyles) renderMsg(s string) string {
	return st.render(s, st.msg)
}

func (st levelStyles) render(s string, c termenv.Color) string {
	if st.profile == termenv.Ascii || s == "" {
		return s
	}
	return st.profile.String(s).Foreground(c).String()
}

// newStyles builds per-level styles for out. The lipgloss renderer inspects
// out to pick a color profile; anything that is not a terminal gets plain
// text unless mode forces color.
func newStyles(out io.Writer, mode ColorMode) map[Level]levelStyles {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	profile := r.ColorProfile()

	styles := make(map[Level]levelStyles, len(palette))
	for level, c := range palette {
		styles[level] = levelStyles{
			profile: profile,
			tag:     profile.Color(c.tag.Hex()),
			msg:     profile.Color(c.msg.Hex()),
		}
	}
	return styles
}
