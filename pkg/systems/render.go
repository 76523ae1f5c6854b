package systems

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shared 1x1 white source for path triangles, allocated lazily so the
// package can be imported (and its physics tested) without touching
// the graphics stack.
var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// fillPath fills p with clr scaled by alpha.
func fillPath(dst *ebiten.Image, p *vector.Path, clr color.RGBA, alpha float64) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, clr, alpha)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

// strokePath strokes p with the given width.
func strokePath(dst *ebiten.Image, p *vector.Path, width float32, clr color.RGBA, alpha float64) {
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	tint(vs, clr, alpha)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

func tint(vs []ebiten.Vertex, clr color.RGBA, alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(alpha)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

func sinCos(a float64) (sin, cos float64) {
	return math.Sin(a), math.Cos(a)
}

// rotated returns (cx+dx, cy+dy) rotated by the given sin/cos around
// (cx, cy), as float32 for path building.
func rotated(cx, cy, dx, dy, sin, cos float64) (float32, float32) {
	return float32(cx + dx*cos - dy*sin), float32(cy + dx*sin + dy*cos)
}

// appendStar appends a 5-spike sparkle polygon to p.
func appendStar(p *vector.Path, cx, cy, outer, rot float64) {
	inner := outer * 0.42
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := rot + float64(i)*math.Pi/5 - math.Pi/2
		x := float32(cx + math.Cos(a)*r)
		y := float32(cy + math.Sin(a)*r)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}

// appendHeart appends a two-curve bezier heart of half-width s
// centered near (cx, cy), rotated by rot.
func appendHeart(p *vector.Path, cx, cy, s, rot float64) {
	sin, cos := math.Sin(rot), math.Cos(rot)
	pt := func(dx, dy float64) (float32, float32) {
		return rotated(cx, cy, dx*s, dy*s, sin, cos)
	}
	x0, y0 := pt(0, 0.95) // bottom tip
	p.MoveTo(x0, y0)
	c1x, c1y := pt(-1.4, 0.1)
	c2x, c2y := pt(-0.9, -1.05)
	tx, ty := pt(0, -0.35) // top dip
	p.CubicTo(c1x, c1y, c2x, c2y, tx, ty)
	c3x, c3y := pt(0.9, -1.05)
	c4x, c4y := pt(1.4, 0.1)
	p.CubicTo(c3x, c3y, c4x, c4y, x0, y0)
	p.Close()
}

// appendLeaf appends a two-curve leaf silhouette (tip up in local
// coordinates) of half-length s, rotated by rot. The midrib and stem
// are stroked separately by the leaves style.
func appendLeaf(p *vector.Path, cx, cy, s, rot float64) {
	sin, cos := math.Sin(rot), math.Cos(rot)
	pt := func(dx, dy float64) (float32, float32) {
		return rotated(cx, cy, dx*s, dy*s, sin, cos)
	}
	tipX, tipY := pt(0, -1)
	baseX, baseY := pt(0, 1)
	p.MoveTo(tipX, tipY)
	cx1, cy1 := pt(0.9, -0.2)
	p.QuadTo(cx1, cy1, baseX, baseY)
	cx2, cy2 := pt(-0.9, -0.2)
	p.QuadTo(cx2, cy2, tipX, tipY)
	p.Close()
}
