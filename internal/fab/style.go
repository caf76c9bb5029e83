package fab

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/liquid-button/internal/geom"
)

// Style is the axis the cells travel along when the button opens.
type Style int

const (
	Up Style = iota
	Right
	Left
	Down
)

var styleNames = [...]string{"up", "right", "left", "down"}

func (s Style) String() string {
	if s < Up || s > Down {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle maps "up", "right", "left" or "down" to a Style.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(name, n) {
			return Style(i), nil
		}
	}
	return Up, fmt.Errorf("unknown animate style %q", name)
}

// Offset returns the displacement of distance along the style's axis in
// screen coordinates.
func (s Style) Offset(distance float64) geom.Point {
	switch s {
	case Right:
		return geom.Pt(distance, 0)
	case Left:
		return geom.Pt(-distance, 0)
	case Down:
		return geom.Pt(0, distance)
	default:
		return geom.Pt(0, -distance)
	}
}
