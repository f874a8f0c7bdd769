package world

import "math"

type Vector struct {
	X, Y, Z float32
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector) Dot(o Vector) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns the zero vector when v has no length.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return v.Scale(1 / l)
}

// XZ drops the vertical component.
func (v Vector) XZ() Vector {
	return Vector{X: v.X, Z: v.Z}
}

// RotateY rotates v around the vertical axis by angle radians,
// counter-clockwise when looking down from +Y.
func (v Vector) RotateY(angle float32) Vector {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Vector{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func copySign(v float32, sign float32) float32 {
	return float32(math.Copysign(float64(v), float64(sign)))
}

// wrapAngle keeps yaw in (-Pi, Pi].
func wrapAngle(a float32) float32 {
	w := math.Remainder(float64(a), 2*math.Pi)
	if w <= -math.Pi {
		w += 2 * math.Pi
	}
	return float32(w)
}
