// Package scroll binds a bounded page scroll distance to ring rotation progress
package scroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Offset is a position along an edge box: a fraction of its height plus fixed pixels
type Offset struct {
	Fraction float64
	Pixels   float64
}

// Resolve returns the offset in pixels for a box of the given height
func (o Offset) Resolve(height float64) float64 {
	return o.Fraction*height + o.Pixels
}

// Anchor pairs the container's trigger edge with the viewport line it must reach
// "top center" pins when the container top reaches the viewport center
type Anchor struct {
	Element  Offset
	Viewport Offset
	expr     string
}

// String returns the normalized anchor expression
func (a Anchor) String() string { return a.expr }

// TopTop is the default anchor
var TopTop = Anchor{expr: "top top"}

// ParseAnchor parses "<element> <viewport>" where each side is top, center, bottom,
// a percentage ("20%") or pixels ("100px", "100")
// A single token applies to both sides
func ParseAnchor(expr string) (Anchor, error) {
	fields := strings.Fields(strings.ToLower(expr))
	switch len(fields) {
	case 1:
		fields = append(fields, fields[0])
	case 2:
	default:
		return TopTop, fmt.Errorf("anchor %q: expected \"<element> <viewport>\"", expr)
	}

	el, err := parseOffset(fields[0])
	if err != nil {
		return TopTop, fmt.Errorf("anchor %q element: %w", expr, err)
	}
	vp, err := parseOffset(fields[1])
	if err != nil {
		return TopTop, fmt.Errorf("anchor %q viewport: %w", expr, err)
	}
	return Anchor{Element: el, Viewport: vp, expr: fields[0] + " " + fields[1]}, nil
}

func parseOffset(tok string) (Offset, error) {
	switch tok {
	case "top":
		return Offset{}, nil
	case "center":
		return Offset{Fraction: 0.5}, nil
	case "bottom":
		return Offset{Fraction: 1}, nil
	}
	if pct, ok := strings.CutSuffix(tok, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil || !finite(v) {
			return Offset{}, fmt.Errorf("bad percentage %q", tok)
		}
		return Offset{Fraction: v / 100}, nil
	}
	px, _ := strings.CutSuffix(tok, "px")
	v, err := strconv.ParseFloat(px, 64)
	if err != nil || !finite(v) {
		return Offset{}, fmt.Errorf("unknown position %q", tok)
	}
	return Offset{Pixels: v}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
