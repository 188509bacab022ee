package galaxy

import (
	"math"
	"testing"
)

func TestOrbit_At(t *testing.T) {
	o := Orbit{Radius: 15, Speed: 0.1, YOffset: 5}
	tests := []struct {
		name string
		t    float64
		want Vec3
	}{
		{"start", 0, Vec3{Z: 15}},
		{"quarter turn", math.Pi / 2 / 0.1, Vec3{X: 15, Y: 5 * math.Sin(math.Pi/4)}},
		{"half turn", math.Pi / 0.1, Vec3{Y: 5, Z: -15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := o.At(tt.t)
			if !approxEqual(got.X, tt.want.X, 1e-9) || !approxEqual(got.Y, tt.want.Y, 1e-9) || !approxEqual(got.Z, tt.want.Z, 1e-9) {
				t.Errorf("At(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestOrbit_StaysOnRadius(t *testing.T) {
	for _, o := range stationOrbits {
		for s := 0.0; s < 120; s += 7.5 {
			p := o.At(s)
			if r := math.Hypot(p.X, p.Z); !approxEqual(r, o.Radius, 1e-9) {
				t.Fatalf("orbit %+v at %vs: radius %v", o, s, r)
			}
			if math.Abs(p.Y) > math.Abs(o.YOffset)+1e-9 {
				t.Fatalf("orbit %+v at %vs: y %v beyond %v", o, s, p.Y, o.YOffset)
			}
		}
	}
}
