// Package layout holds the rectangle and percentage math every widget layout is built from.
package layout

// Rect is an axis-aligned rectangle in virtual units unless stated otherwise.
type Rect struct {
	X, Y, W, H float64
}

// Percent converts percent of total into an absolute length.
func Percent(total, percent float64) float64 {
	return total / 100 * percent
}

// ToPercent converts an absolute length into a percentage of total.
// A zero total is treated as 1.
func ToPercent(value, total float64) float64 {
	if total == 0 {
		total = 1
	}
	return value / total * 100
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inset shrinks r by dx on the left and right edges and dy on the top and bottom.
// The result never has a negative size.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - dx*2, H: r.H - dy*2}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Scale maps r into another coordinate space by independent x and y factors.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}
}

// Sub returns the rectangle that occupies the given percentage window of r.
func (r Rect) Sub(xPercent, yPercent, wPercent, hPercent float64) Rect {
	return Rect{
		X: r.X + Percent(r.W, xPercent),
		Y: r.Y + Percent(r.H, yPercent),
		W: Percent(r.W, wPercent),
		H: Percent(r.H, hPercent),
	}
}
