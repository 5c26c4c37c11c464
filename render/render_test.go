package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringmaze/circular"
	"github.com/katalvlaran/ringmaze/maze"
	"github.com/katalvlaran/ringmaze/render"
)

const eps = 1e-5

// call is one recorded Canvas call.
type call struct {
	op     string
	p      geom.Coord
	radius float64
	large  bool
}

type recorder struct{ calls []call }

func (r *recorder) MoveTo(p geom.Coord) { r.calls = append(r.calls, call{op: "move", p: p}) }
func (r *recorder) LineTo(p geom.Coord) { r.calls = append(r.calls, call{op: "line", p: p}) }
func (r *recorder) ArcTo(radius float64, large bool, p geom.Coord) {
	r.calls = append(r.calls, call{op: "arc", p: p, radius: radius, large: large})
}
func (r *recorder) Circle(center geom.Coord, radius float64) {
	r.calls = append(r.calls, call{op: "circle", p: center, radius: radius})
}

func layout() render.Layout {
	return render.Layout{Rings: 3, RingWidth: 20, Margin: 10}
}

func borders() []maze.Border {
	return []maze.Border{
		{Start: circular.At(0, 0, 1), End: circular.At(0, 3, 5)},
		{Start: circular.At(0, 2, 5), End: circular.At(1, 2, 5)},
		{Start: circular.At(2, 0, 1), End: circular.At(2, 0, 1)},
	}
}

func TestLayout(t *testing.T) {
	l := layout()
	require.NoError(t, l.Validate())
	assert.InDelta(t, 140, l.Size(), eps)
	assert.Equal(t, geom.Coord{X: 70, Y: 70}, l.Center())
	assert.InDelta(t, 60, l.Radius(2), eps)

	p := l.Point(circular.At(1, 1, 4))
	assert.InDelta(t, 70, p.X, eps)
	assert.InDelta(t, 110, p.Y, eps, "a quarter turn points down the screen")

	assert.ErrorIs(t, render.Layout{Rings: 0, RingWidth: 20}.Validate(), render.ErrLayout)
	assert.ErrorIs(t, render.Layout{Rings: 2, RingWidth: 0}.Validate(), render.ErrLayout)
	assert.ErrorIs(t, render.Layout{Rings: 2, RingWidth: 5, Margin: -1}.Validate(), render.ErrLayout)
	assert.Equal(t, render.Layout{Rings: 4, RingWidth: render.DefaultRingWidth, Margin: render.DefaultMargin}, render.NewLayout(4))
}

func TestTrace(t *testing.T) {
	var rec recorder
	render.Trace(layout(), borders(), &rec)

	want := []call{
		{op: "move", p: geom.Coord{X: 90, Y: 70}},
		{op: "arc", p: geom.Coord{X: 53.81966, Y: 58.24429}, radius: 20, large: true},
		{op: "move", p: geom.Coord{X: 53.81966, Y: 81.75571}},
		{op: "line", p: geom.Coord{X: 37.63932, Y: 93.51141}},
		{op: "circle", p: geom.Coord{X: 70, Y: 70}, radius: 60},
	}
	require.Len(t, rec.calls, len(want))
	for i, w := range want {
		got := rec.calls[i]
		assert.Equal(t, w.op, got.op, "call %d", i)
		assert.InDelta(t, w.p.X, got.p.X, eps, "call %d x", i)
		assert.InDelta(t, w.p.Y, got.p.Y, eps, "call %d y", i)
		assert.InDelta(t, w.radius, got.radius, eps, "call %d radius", i)
		assert.Equal(t, w.large, got.large, "call %d large-arc", i)
	}
}

// TestTrace_SmallArcWraps checks an arc crossing angle zero.
func TestTrace_SmallArcWraps(t *testing.T) {
	var rec recorder
	render.Trace(layout(), []maze.Border{{Start: circular.At(1, 7, 8), End: circular.At(1, 1, 8)}}, &rec)
	require.Len(t, rec.calls, 2)
	assert.False(t, rec.calls[1].large)
	assert.InDelta(t, 40, rec.calls[1].radius, eps)
}

func TestSVGCanvas(t *testing.T) {
	l := layout()
	c := render.NewSVGCanvas(l)
	render.Trace(l, borders(), c)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0"?>`))
	assert.Contains(t, doc, `viewBox="0.000000 0.000000 140.000000 140.000000"`)
	assert.Contains(t, doc, "M90.000000,70.000000 A20.000000,20.000000 0 1,1 53.819660,58.244295")
	assert.Contains(t, doc, "L37.639320,93.511410")
	assert.Contains(t, doc, "<circle cx='70.000000' cy='70.000000' r='60.000000'")
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
}

// failWriter fails after the first write.
type failWriter struct{ writes int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > 1 {
		return 0, assert.AnError
	}
	return len(p), nil
}

func TestSVGCanvas_WriteError(t *testing.T) {
	c := render.NewSVGCanvas(layout())
	render.Trace(layout(), borders(), c)
	fw := &failWriter{}
	_, err := c.WriteTo(fw)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, fw.writes, "writing stops at the first error")
}

func TestPNGCanvas(t *testing.T) {
	l := layout()
	c := render.NewPNGCanvas(l, 4)
	defer c.Close()
	c.MoveTo(geom.Coord{X: 20, Y: 70})
	c.LineTo(geom.Coord{X: 120, Y: 70})

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 140, img.Bounds().Dx())
	assert.Equal(t, 140, img.Bounds().Dy())

	r, g, b, _ := img.At(70, 70).RGBA()
	assert.Less(t, r+g+b, uint32(3*0x8000), "stroke is dark")
	r, g, b, _ = img.At(2, 2).RGBA()
	assert.Greater(t, r+g+b, uint32(3*0x8000), "background is light")
}

// TestPNGCanvas_LargeArc draws three quarters of a circle clockwise from
// east to north and checks that the west side is inked and the north-east
// quarter is not.
func TestPNGCanvas_LargeArc(t *testing.T) {
	l := layout()
	c := render.NewPNGCanvas(l, 4)
	defer c.Close()
	c.MoveTo(geom.Coord{X: 110, Y: 70})
	c.ArcTo(40, true, geom.Coord{X: 70, Y: 30})

	img, err := c.Image()
	require.NoError(t, err)
	for _, p := range [][2]int{{70, 110}, {30, 70}} {
		r, g, b, _ := img.At(p[0], p[1]).RGBA()
		assert.Less(t, r+g+b, uint32(3*0x8000), "swept point %v", p)
	}
	r, g, b, _ := img.At(98, 42).RGBA()
	assert.Greater(t, r+g+b, uint32(3*0x8000), "north-east quarter stays open")
}

func TestTermCanvas(t *testing.T) {
	l := layout()
	c := render.NewTermCanvas(l, 35)
	assert.Equal(t, 35, c.Cols())
	assert.Equal(t, 18, c.Rows())

	blank := c.String()
	assert.Equal(t, strings.Repeat("\n", 18), blank)

	render.Trace(l, borders(), c)
	grid := c.Runes()
	require.Len(t, grid, 18)

	dots := 0
	for _, row := range grid {
		require.Len(t, row, 35)
		for _, r := range row {
			if r != ' ' {
				assert.True(t, r > 0x2800 && r <= 0x28FF, "braille rune %U", r)
				dots++
			}
		}
	}
	assert.Greater(t, dots, 20)
	assert.Equal(t, ' ', grid[0][0], "corner stays outside the outer ring")
}

func TestTermCanvas_Draw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	s.SetSize(40, 20)
	require.NoError(t, s.Init())
	defer s.Fini()

	l := layout()
	c := render.NewTermCanvas(l, 35)
	render.Trace(l, borders(), c)
	c.Draw(s, 0, 0, tcell.StyleDefault)
	s.Show()

	assert.Equal(t, 9, render.Caption(s, 0, 19, "迷宮 maze", tcell.StyleDefault))
	assert.Equal(t, 4, render.Caption(s, 36, 19, "seed 7", tcell.StyleDefault), "clipped at the right edge")
}
