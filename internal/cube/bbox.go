package cube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BBox представляет осевой параллелепипед (AABB). Значение неизменяемо:
// все операции возвращают новый бокс.
type BBox struct {
	min, max mgl64.Vec3
}

// FullBox занимает всю ячейку блока (0,0,0)-(1,1,1)
var FullBox = Box(0, 0, 0, 1, 1, 1)

// Box создаёт бокс по двум углам. Порядок координат не важен:
// минимум и максимум выбираются по каждой оси.
func Box(x0, y0, z0, x1, y1, z1 float64) BBox {
	return BBox{
		min: mgl64.Vec3{math.Min(x0, x1), math.Min(y0, y1), math.Min(z0, z1)},
		max: mgl64.Vec3{math.Max(x0, x1), math.Max(y0, y1), math.Max(z0, z1)},
	}
}

// Min возвращает минимальный угол
func (b BBox) Min() mgl64.Vec3 {
	return b.min
}

// Max возвращает максимальный угол
func (b BBox) Max() mgl64.Vec3 {
	return b.max
}

// Height возвращает высоту бокса по оси Y
func (b BBox) Height() float64 {
	return b.max[1] - b.min[1]
}

// Translate смещает бокс на вектор
func (b BBox) Translate(v mgl64.Vec3) BBox {
	return BBox{min: b.min.Add(v), max: b.max.Add(v)}
}

// Grow расширяет бокс на x во все стороны
func (b BBox) Grow(x float64) BBox {
	d := mgl64.Vec3{x, x, x}
	return BBox{min: b.min.Sub(d), max: b.max.Add(d)}
}

// Extend растягивает бокс в направлении вектора: отрицательные компоненты
// двигают минимум, положительные двигают максимум.
func (b BBox) Extend(v mgl64.Vec3) BBox {
	out := b
	for i := 0; i < 3; i++ {
		if v[i] < 0 {
			out.min[i] += v[i]
		} else {
			out.max[i] += v[i]
		}
	}
	return out
}

// ExtendTowards растягивает бокс на amount в сторону грани
func (b BBox) ExtendTowards(f Face, amount float64) BBox {
	return b.Extend(f.Offset().Float().Mul(amount))
}

// IntersectsWith проверяет пересечение объёмов. Касание гранями
// пересечением не считается.
func (b BBox) IntersectsWith(other BBox) bool {
	for i := 0; i < 3; i++ {
		if other.max[i] <= b.min[i] || other.min[i] >= b.max[i] {
			return false
		}
	}
	return true
}

// ApproxEqual сравнивает боксы с погрешностью float64
func (b BBox) ApproxEqual(other BBox) bool {
	return b.min.ApproxEqual(other.min) && b.max.ApproxEqual(other.max)
}
