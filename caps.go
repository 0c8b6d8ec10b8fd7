package matchgeo

import "strings"

// ColorSupport is how many colors a terminal can show.
type ColorSupport uint8

const (
	ColorNone ColorSupport = iota
	Color16
	Color256
	ColorTrue
)

// Capabilities are the terminal features the ANSI writer adapts to.
type Capabilities struct {
	Colors ColorSupport
}

// DetectCapabilities reads the usual environment variables through getenv.
// It returns Color16 when nothing more specific is advertised.
func DetectCapabilities(getenv func(string) string) Capabilities {
	if getenv("NO_COLOR") != "" {
		return Capabilities{Colors: ColorNone}
	}
	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return Capabilities{Colors: ColorTrue}
	}
	for _, v := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if getenv(v) != "" {
			return Capabilities{Colors: ColorTrue}
		}
	}
	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{Colors: ColorNone}
	case strings.Contains(term, "truecolor"):
		return Capabilities{Colors: ColorTrue}
	case strings.Contains(term, "256color"):
		return Capabilities{Colors: Color256}
	}
	return Capabilities{Colors: Color16}
}

// TrueColor reports whether 24-bit colors can be sent as is.
func (c Capabilities) TrueColor() bool {
	return c.Colors == ColorTrue
}

func (c Capabilities) String() string {
	switch c.Colors {
	case ColorNone:
		return "no-color"
	case Color16:
		return "16-color"
	case Color256:
		return "256-color"
	}
	return "true-color"
}
