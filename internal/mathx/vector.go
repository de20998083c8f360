// Package mathx holds the small 2D geometry used to move animations along
// straight and curved paths.
package mathx

import "math"

// Point2 is a point in continuous cell space.
type Point2 struct {
	X, Y float64
}

// Vector2 is a displacement anchored at Tail.
type Vector2 struct {
	Tail   Point2
	DX, DY float64
}

// Curve2 is a cubic Bézier curve.
type Curve2 struct {
	P0, P1, P2, P3 Point2
}

// Add returns p + q.
func Add(p, q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns v with its displacement multiplied by k.
func Scale(v Vector2, k float64) Vector2 {
	return Vector2{Tail: v.Tail, DX: v.DX * k, DY: v.DY * k}
}

// PointPlusVector translates p by v's displacement.
func PointPlusVector(p Point2, v Vector2) Point2 {
	return Point2{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Head returns the endpoint of v.
func (v Vector2) Head() Point2 {
	return PointPlusVector(v.Tail, v)
}

// Length returns the Euclidean length of v's displacement.
func (v Vector2) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Lerp interpolates between a and b.
func Lerp(a, b Point2, t float64) Point2 {
	return Point2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Along returns the point at parameter t on v.
func Along(v Vector2, t float64) Point2 {
	return PointPlusVector(v.Tail, Scale(v, t))
}

// Bezier evaluates c at t in Bernstein form.
func Bezier(c Curve2, t float64) Point2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point2{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// RotatePoint rotates p about the origin by angle radians.
func RotatePoint(p Point2, angle float64) Point2 {
	sin, cos := math.Sincos(angle)
	return Point2{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Rotate rotates both the displacement and the tail of v about the origin.
func Rotate(v Vector2, angle float64) Vector2 {
	d := RotatePoint(Point2{X: v.DX, Y: v.DY}, angle)
	return Vector2{Tail: RotatePoint(v.Tail, angle), DX: d.X, DY: d.Y}
}
