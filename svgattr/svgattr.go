// Package svgattr parses a minimal subset of SVG into Shape records:
// path geometry plus fill/stroke color, accumulating warnings for
// anything it cannot represent rather than aborting.
package svgattr

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inkscribe/vraster2d/color"
	vpath "github.com/inkscribe/vraster2d/path"
	"github.com/inkscribe/vraster2d/pixel"
)

// Shape is one parsed <path> element: its geometry plus resolved
// fill/stroke colors. Fill/Stroke are nil when the attribute was
// absent, "none", or unresolvable.
type Shape struct {
	Fill   *pixel.Pixel
	Stroke *pixel.Pixel
	Path   *vpath.Path
}

type svgRoot struct {
	XMLName xml.Name  `xml:"svg"`
	Paths   []svgPath `xml:"path"`
}

type svgPath struct {
	D      string `xml:"d,attr"`
	Fill   string `xml:"fill,attr"`
	Stroke string `xml:"stroke,attr"`
}

// Parse reads an SVG document from r, returning one Shape per <path>
// element together with every warning accumulated along the way.
// Parse never fails on malformed path data or unresolvable colors; it
// only returns a non-nil error for input that is not well-formed XML
// or has no root <svg> element.
func Parse(r io.Reader) ([]Shape, []string, error) {
	var root svgRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, nil, fmt.Errorf("svgattr: decoding svg: %w", err)
	}

	var shapes []Shape
	var warnings []string

	for i, sp := range root.Paths {
		p, pwarn := parsePathData(sp.D)
		for _, w := range pwarn {
			warnings = append(warnings, fmt.Sprintf("path[%d]: %s", i, w))
		}

		fill, fwarn := resolveColor(sp.Fill)
		if fwarn != "" {
			warnings = append(warnings, fmt.Sprintf("path[%d]: fill: %s", i, fwarn))
		}
		stroke, swarn := resolveColor(sp.Stroke)
		if swarn != "" {
			warnings = append(warnings, fmt.Sprintf("path[%d]: stroke: %s", i, swarn))
		}

		shapes = append(shapes, Shape{Fill: fill, Stroke: stroke, Path: p})
	}

	return shapes, warnings, nil
}

// resolveColor resolves an SVG color attribute value via the named
// CSS2 table first, then #rrggbb/#rgb hex. Empty and "none" resolve to
// no color (nil, no warning); anything else unresolvable accumulates a
// warning and falls back to no color.
func resolveColor(v string) (*pixel.Pixel, string) {
	v = strings.TrimSpace(v)
	if v == "" || v == "none" {
		return nil, ""
	}

	if p, ok := color.FromNameRGBA(v); ok {
		return &p, ""
	}

	if strings.HasPrefix(v, "#") {
		if p, ok := parseHexColor(v[1:]); ok {
			return &p, ""
		}
	}

	return nil, fmt.Sprintf("unresolvable color %q, treating as unset", v)
}

func parseHexColor(hex string) (pixel.Pixel, bool) {
	var r, g, b byte
	switch len(hex) {
	case 3:
		rr, ok1 := parseHexByte(string([]byte{hex[0], hex[0]}))
		gg, ok2 := parseHexByte(string([]byte{hex[1], hex[1]}))
		bb, ok3 := parseHexByte(string([]byte{hex[2], hex[2]}))
		if !ok1 || !ok2 || !ok3 {
			return pixel.Pixel{}, false
		}
		r, g, b = rr, gg, bb
	case 6:
		rr, ok1 := parseHexByte(hex[0:2])
		gg, ok2 := parseHexByte(hex[2:4])
		bb, ok3 := parseHexByte(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return pixel.Pixel{}, false
		}
		r, g, b = rr, gg, bb
	default:
		return pixel.Pixel{}, false
	}

	return pixel.RGBA(r, g, b, 255), true
}

func parseHexByte(s string) (byte, bool) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

// parsePathData interprets a minimal mini-grammar of the d attribute:
// M/m, L/l, C/c, Z/z, absolute and relative. Any other command letter
// is skipped and recorded as a warning; parsing resumes at the next
// recognized command letter, so one unsupported command doesn't
// discard the rest of the path.
func parsePathData(d string) (*vpath.Path, []string) {
	var p vpath.Path
	var warnings []string

	tokens := tokenizePathData(d)
	if len(tokens) == 0 {
		return &p, warnings
	}

	var cur vpath.Point
	var cmd byte
	haveSubpath := false
	i := 0

	readFloat := func() (float64, bool) {
		if i >= len(tokens) {
			return 0, false
		}
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return 0, false
		}
		i++
		return v, true
	}

	for i < len(tokens) {
		tok := tokens[i]
		if isCommandLetter(tok) {
			cmd = tok[0]
			i++

			switch cmd {
			case 'Z', 'z':
				if haveSubpath {
					p.Close()
					cur = p.CurrentPoint()
				}
				continue
			case 'M', 'm', 'L', 'l', 'C', 'c':
				// handled by the coordinate-consuming loop below
			default:
				warnings = append(warnings, fmt.Sprintf("unsupported path command %q, skipped", string(cmd)))
				continue
			}
		}

		switch cmd {
		case 'M', 'm':
			x, ok1 := readFloat()
			y, ok2 := readFloat()
			if !ok1 || !ok2 {
				warnings = append(warnings, "malformed M coordinates, path truncated")
				return &p, warnings
			}
			if cmd == 'm' && haveSubpath {
				x, y = cur.X+x, cur.Y+y
			}
			p.MoveTo(x, y)
			cur = vpath.Point{X: x, Y: y}
			haveSubpath = true
			// subsequent bare coordinate pairs after M are L, per SVG.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}

		case 'L', 'l':
			if !haveSubpath {
				warnings = append(warnings, "L/l before any M, skipped")
				i += 2
				continue
			}
			x, ok1 := readFloat()
			y, ok2 := readFloat()
			if !ok1 || !ok2 {
				warnings = append(warnings, "malformed L coordinates, path truncated")
				return &p, warnings
			}
			if cmd == 'l' {
				x, y = cur.X+x, cur.Y+y
			}
			p.LineTo(x, y)
			cur = vpath.Point{X: x, Y: y}

		case 'C', 'c':
			if !haveSubpath {
				warnings = append(warnings, "C/c before any M, skipped")
				i += 6
				continue
			}
			x1, ok1 := readFloat()
			y1, ok2 := readFloat()
			x2, ok3 := readFloat()
			y2, ok4 := readFloat()
			x, ok5 := readFloat()
			y, ok6 := readFloat()
			if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
				warnings = append(warnings, "malformed C coordinates, path truncated")
				return &p, warnings
			}
			if cmd == 'c' {
				x1, y1 = cur.X+x1, cur.Y+y1
				x2, y2 = cur.X+x2, cur.Y+y2
				x, y = cur.X+x, cur.Y+y
			}
			p.CurveTo(x1, y1, x2, y2, x, y)
			cur = vpath.Point{X: x, Y: y}

		default:
			// an unsupported command was already warned about above;
			// skip the token so we don't loop forever on its operands.
			i++
		}
	}

	return &p, warnings
}

func isCommandLetter(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	switch tok[0] {
	case 'M', 'm', 'L', 'l', 'C', 'c', 'Z', 'z',
		'H', 'h', 'V', 'v', 'S', 's', 'T', 't', 'Q', 'q', 'A', 'a':
		return true
	default:
		return false
	}
}

// tokenizePathData splits d into command letters and numbers: insert
// spaces around letters, turn commas into spaces, then split on
// whitespace. Negative numbers glued to a preceding number ("1-2")
// are additionally split since SVG allows omitting the separator
// there.
func tokenizePathData(d string) []string {
	var b strings.Builder
	for _, r := range d {
		switch {
		case isCommandLetter(string(r)):
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		case r == ',':
			b.WriteByte(' ')
		case r == '-':
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}
