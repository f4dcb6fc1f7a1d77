package habit

import (
	"fmt"
	"strings"
)

type Color string

const (
	Blue   Color = "blue"
	Green  Color = "green"
	Purple Color = "purple"
	Pink   Color = "pink"
	Yellow Color = "yellow"
	Red    Color = "red"
	Indigo Color = "indigo"
	Orange Color = "orange"
)

// Palette lists the selectable colors in display order. The first entry is the default.
var Palette = []Color{Blue, Green, Purple, Pink, Yellow, Red, Indigo, Orange}

var hexCodes = map[Color]string{
	Blue:   "#3b82f6",
	Green:  "#22c55e",
	Purple: "#a855f7",
	Pink:   "#ec4899",
	Yellow: "#eab308",
	Red:    "#ef4444",
	Indigo: "#6366f1",
	Orange: "#f97316",
}

// ParseColor accepts a bare palette token ("blue") or its utility class form ("bg-blue-500").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(strings.TrimPrefix(s, "bg-"), "-500")
	c := Color(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

func (c Color) Valid() bool {
	_, ok := hexCodes[c]
	return ok
}

// Class returns the utility class the dashboard paints the habit with.
func (c Color) Class() string {
	return "bg-" + string(c) + "-500"
}

func (c Color) Hex() string {
	return hexCodes[c]
}
