package systems

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Soft radial-gradient disc texture shared by the snow flakes and the
// firework glows. Generated procedurally once, tinted per draw.
const softDiscSize = 64

var (
	softDiscOnce sync.Once
	softDisc     *ebiten.Image
)

func softDiscTexture() *ebiten.Image {
	softDiscOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, softDiscSize, softDiscSize))
		c := softDiscSize / 2.0
		for y := 0; y < softDiscSize; y++ {
			for x := 0; x < softDiscSize; x++ {
				d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
				t := 1 - d
				if t < 0 {
					t = 0
				}
				a := uint8(t * t * 255)
				// Premultiplied white with radial alpha falloff.
				img.SetRGBA(x, y, color.RGBA{a, a, a, a})
			}
		}
		softDisc = ebiten.NewImageFromImage(img)
	})
	return softDisc
}

// drawSoftDisc draws the gradient disc centered at (x, y) with the
// given radius, tinted by clr and scaled by alpha.
func drawSoftDisc(dst *ebiten.Image, x, y, radius float64, clr color.RGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	tex := softDiscTexture()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	s := radius * 2 / softDiscSize
	op.GeoM.Translate(-softDiscSize/2, -softDiscSize/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(tex, op)
}
