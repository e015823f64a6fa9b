// pkg/arena/arena.go
package arena

import "math"

// Rect — прямоугольная арена в мировых координатах.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// FromSize строит арену с началом координат в левом верхнем углу.
func FromSize(width, height float64) Rect {
	return Rect{MinX: 0, MinY: 0, MaxX: width, MaxY: height}
}

// Width возвращает ширину арены.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height возвращает высоту арены.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Center возвращает центр арены.
func (r Rect) Center() (x, y float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Clamp прижимает точку к внутренней области арены с отступом inset от границ.
func (r Rect) Clamp(x, y, inset float64) (float64, float64) {
	if x < r.MinX+inset {
		x = r.MinX + inset
	}
	if x > r.MaxX-inset {
		x = r.MaxX - inset
	}
	if y < r.MinY+inset {
		y = r.MinY + inset
	}
	if y > r.MaxY-inset {
		y = r.MaxY - inset
	}
	return x, y
}

// Contains проверяет, лежит ли точка внутри арены (границы включаются).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// WithinMargin проверяет, лежит ли точка внутри арены, расширенной на margin
// во все стороны. Используется для отсечения улетевших сущностей.
func (r Rect) WithinMargin(x, y, margin float64) bool {
	return x >= r.MinX-margin && x <= r.MaxX+margin &&
		y >= r.MinY-margin && y <= r.MaxY+margin
}

// Side — сторона арены.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// PerimeterPoint возвращает точку на стороне side, параметризованную t в [0, 1]
// вдоль стороны и вынесенную наружу на offset.
func (r Rect) PerimeterPoint(side Side, t, offset float64) (x, y float64) {
	switch side {
	case SideTop:
		return r.MinX + t*r.Width(), r.MinY - offset
	case SideRight:
		return r.MaxX + offset, r.MinY + t*r.Height()
	case SideBottom:
		return r.MinX + t*r.Width(), r.MaxY + offset
	default: // SideLeft
		return r.MinX - offset, r.MinY + t*r.Height()
	}
}

// InwardNormal возвращает единичный вектор, направленный внутрь арены
// от стороны side.
func (s Side) InwardNormal() (nx, ny float64) {
	switch s {
	case SideTop:
		return 0, 1
	case SideRight:
		return -1, 0
	case SideBottom:
		return 0, -1
	default: // SideLeft
		return 1, 0
	}
}

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap проверяет пересечение двух окружностей.
// Касание границ считается пересечением.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	rr := r1 + r2
	return dx*dx+dy*dy <= rr*rr
}
