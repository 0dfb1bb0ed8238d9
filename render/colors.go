package render

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/lixenwraith/multipong/constants"
)

// ErrInvalidColor is returned for palette strings that are not #RRGGBB
var ErrInvalidColor = errors.New("invalid color")

var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbPaddle     = RGB{255, 255, 255} // constants.PaddleColor
	RgbHelpText   = RGB{180, 180, 180} // Window help line
)

// colorCache avoids reparsing the fixed palette every frame
var colorCache sync.Map // string -> RGB

// ParseColor converts "#RRGGBB" to RGB
func ParseColor(s string) (RGB, error) {
	if c, ok := colorCache.Load(s); ok {
		return c.(RGB), nil
	}

	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}

	c := RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	colorCache.Store(s, c)
	return c, nil
}

func init() {
	if c, err := ParseColor(constants.PaddleColor); err == nil {
		RgbPaddle = c
	}
}
