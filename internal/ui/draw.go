// internal/ui/draw.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// fillTriangle рисует закрашенный треугольник. В пакете vector нет готового
// примитива, поэтому собираем path и отдаём его в DrawTriangles вручную.
func fillTriangle(dst *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func strokeTriangle(dst *ebiten.Image, x1, y1, x2, y2, x3, y3, width float32, clr color.Color) {
	vector.StrokeLine(dst, x1, y1, x2, y2, width, clr, true)
	vector.StrokeLine(dst, x2, y2, x3, y3, width, clr, true)
	vector.StrokeLine(dst, x3, y3, x1, y1, width, clr, true)
}
