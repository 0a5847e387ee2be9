package march_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/isolines/march"
)

func TestContour_Ring(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	open := march.Contour{Points: pts}
	assert.Equal(t, pts, open.Ring())

	closed := march.Contour{Points: pts, Closed: true}
	ring := closed.Ring()
	assert.Len(t, ring, 4)
	assert.Equal(t, pts[0], ring[3])
	assert.Len(t, closed.Points, 3, "Ring must not grow Points")

	assert.Empty(t, march.Contour{Closed: true}.Ring())
}

func TestContour_Path(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}

	p := march.Contour{Points: pts}.Path()
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}, p.Cmds)
	assert.Equal(t, pts, p.Coords)

	p = march.Contour{Points: pts, Closed: true}.Path()
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, p.Cmds)

	assert.Empty(t, march.Contour{}.Path().Cmds)
}

func TestContour_BoundingBox(t *testing.T) {
	c := march.Contour{Points: []vec.Vec2{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0.5, Y: 0}}}
	assert.Equal(t, rect.Rect{LLx: -3, LLy: -2, URx: 1, URy: 4}, c.BoundingBox())
	assert.Equal(t, rect.Rect{}, march.Contour{}.BoundingBox())
	assert.Zero(t, march.Contour{}.Len())
}
