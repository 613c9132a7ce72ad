package signpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrPathData is returned when the `d` attribute of a path
// can't be compiled.
var ErrPathData = errors.New("invalid path data")

var errParamMismatch = fmt.Errorf("%w: param mismatch", ErrPathData)

// pathCursor is used while compiling path data
type pathCursor struct {
	path             Path
	placeX, placeY   float64 // current point
	startX, startY   float64 // start of the current subpath
	cntlPtX, cntlPtY float64 // last control point, for S and T
	lastKey          byte
	inPath           bool
	points           []float64
}

// Compile interprets the content of a `d` attribute.
// Supported commands are M, L, H, V, C, S, Q, T, A and Z,
// in absolute and relative forms.
func Compile(d string) (Path, error) {
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

func isCommand(b byte) bool {
	return strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", b) != -1
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\t' || b == '\n' || b == '\r'
}

func (c *pathCursor) compilePath(svgPath string) error {
	svgPath = strings.TrimSpace(svgPath)
	if svgPath == "" {
		return fmt.Errorf("%w: empty path", ErrPathData)
	}
	if svgPath[0] != 'M' && svgPath[0] != 'm' {
		return fmt.Errorf("%w: path must start with a moveto", ErrPathData)
	}
	lastIndex := 0
	for i := 1; i < len(svgPath); i++ {
		b := svgPath[i]
		if isCommand(b) {
			if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
				return err
			}
			lastIndex = i
		} else if b != 'e' && b != 'E' && ('a' <= b && b <= 'z' || 'A' <= b && b <= 'Z') {
			return fmt.Errorf("%w: unknown command %q", ErrPathData, b)
		}
	}
	return c.addSeg(svgPath[lastIndex:])
}

// scanNumber returns the end of the number starting at i,
// or i if there is none.
func scanNumber(s string, i int) int {
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	digits := false
	for j < len(s) && isDigit(s[j]) {
		j++
		digits = true
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
			digits = true
		}
	}
	if !digits {
		return i
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if k < len(s) && isDigit(s[k]) {
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			j = k
		}
	}
	return j
}

// getPoints reads a set of floating point values from the SVG format number string,
// and add them to the cursor's points slice.
func (c *pathCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	for i := 0; i < len(dataPoints); {
		if isSeparator(dataPoints[i]) {
			i++
			continue
		}
		j := scanNumber(dataPoints, i)
		if j == i {
			return fmt.Errorf("%w: unexpected character %q", ErrPathData, dataPoints[i])
		}
		f, err := strconv.ParseFloat(dataPoints[i:j], 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrPathData, err)
		}
		c.points = append(c.points, f)
		i = j
	}
	return nil
}

// ensureStart opens a subpath at the current point when a drawing
// command follows a close.
func (c *pathCursor) ensureStart() {
	if !c.inPath {
		c.path.Start(toFixedP(c.placeX, c.placeY))
		c.startX, c.startY = c.placeX, c.placeY
		c.inPath = true
	}
}

func (c *pathCursor) lineTo(x, y float64) {
	c.ensureStart()
	c.path.Line(toFixedP(x, y))
	c.placeX, c.placeY = x, y
}

// reflect returns the reflection of the last control point if the
// previous command was one of `keys`, or the current point otherwise.
func (c *pathCursor) reflect(keys string) (float64, float64) {
	if c.lastKey != 0 && strings.IndexByte(keys, c.lastKey) != -1 {
		return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
	}
	return c.placeX, c.placeY
}

func (c *pathCursor) addSeg(segString string) error {
	if err := c.getPoints(segString[1:]); err != nil {
		return err
	}
	key := segString[0]
	rel := 'a' <= key && key <= 'z'
	k := strings.ToUpper(string(key))[0]
	l := len(c.points)
	var dx, dy float64
	if rel {
		dx, dy = c.placeX, c.placeY
	}
	switch k {
	case 'Z':
		if l != 0 {
			return errParamMismatch
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
		c.inPath = false
	case 'M':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		c.placeX, c.placeY = c.points[0]+dx, c.points[1]+dy
		c.startX, c.startY = c.placeX, c.placeY
		c.path.Start(toFixedP(c.placeX, c.placeY))
		c.inPath = true
		for i := 2; i < l; i += 2 { // implicit lineto
			if rel {
				dx, dy = c.placeX, c.placeY
			}
			c.lineTo(c.points[i]+dx, c.points[i+1]+dy)
		}
	case 'L':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			if rel {
				dx, dy = c.placeX, c.placeY
			}
			c.lineTo(c.points[i]+dx, c.points[i+1]+dy)
		}
	case 'H':
		if l == 0 {
			return errParamMismatch
		}
		for _, x := range c.points {
			if rel {
				dx = c.placeX
			}
			c.lineTo(x+dx, c.placeY)
		}
	case 'V':
		if l == 0 {
			return errParamMismatch
		}
		for _, y := range c.points {
			if rel {
				dy = c.placeY
			}
			c.lineTo(c.placeX, y+dy)
		}
	case 'C':
		if l == 0 || l%6 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 6 {
			if rel {
				dx, dy = c.placeX, c.placeY
			}
			c.ensureStart()
			p := c.points[i : i+6]
			c.cntlPtX, c.cntlPtY = p[2]+dx, p[3]+dy
			c.path.CubeBezier(toFixedP(p[0]+dx, p[1]+dy), toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(p[4]+dx, p[5]+dy))
			c.placeX, c.placeY = p[4]+dx, p[5]+dy
			c.lastKey = k
		}
	case 'S':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			if rel {
				dx, dy = c.placeX, c.placeY
			}
			c.ensureStart()
			p := c.points[i : i+4]
			x1, y1 := c.reflect("CS")
			c.cntlPtX, c.cntlPtY = p[0]+dx, p[1]+dy
			c.path.CubeBezier(toFixedP(x1, y1), toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(p[2]+dx, p[3]+dy))
			c.placeX, c.placeY = p[2]+dx, p[3]+dy
			c.lastKey = k
		}
	case 'Q':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			if rel {
				dx, dy = c.placeX, c.placeY
			}
			c.ensureStart()
			p := c.points[i : i+4]
			c.cntlPtX, c.cntlPtY = p[0]+dx, p[1]+dy
			c.path.QuadBezier(toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(p[2]+dx, p[3]+dy))
			c.placeX, c.placeY = p[2]+dx, p[3]+dy
			c.lastKey = k
		}
	case 'T':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			if rel {
				dx, dy = c.placeX, c.placeY
			}
			c.ensureStart()
			c.cntlPtX, c.cntlPtY = c.reflect("QT")
			c.path.QuadBezier(toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(c.points[i]+dx, c.points[i+1]+dy))
			c.placeX, c.placeY = c.points[i]+dx, c.points[i+1]+dy
			c.lastKey = k
		}
	case 'A':
		if l == 0 || l%7 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 7 {
			if rel {
				dx, dy = c.placeX, c.placeY
			}
			p := c.points[i : i+7]
			x, y := p[5]+dx, p[6]+dy
			ra, rb := math.Abs(p[0]), math.Abs(p[1])
			switch {
			case x == c.placeX && y == c.placeY: // omitted, per SVG
			case ra == 0 || rb == 0:
				c.lineTo(x, y)
			default:
				c.ensureStart()
				rot := p[2] * math.Pi / 180
				cx, cy := findEllipseCenter(&ra, &rb, rot, c.placeX, c.placeY, x, y, p[4] == 0, p[3] == 0)
				c.placeX, c.placeY = c.path.addArc([]float64{ra, rb, p[2], p[3], p[4], x, y}, cx, cy, c.placeX, c.placeY)
			}
		}
	}
	if k != 'C' && k != 'S' && k != 'Q' && k != 'T' {
		c.lastKey = k
	}
	return nil
}
