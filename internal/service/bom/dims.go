package bom

import (
	"fmt"
	"math"
)

// Axis is one decomposed dimension: the number of whole panel units plus a
// half-unit flag. The boolean flag is the single canonical encoding of "this
// axis has a 0.5 m remainder"; the legacy sheet mixed two encodings.
type Axis struct {
	Count int
	Half  bool
}

// Frac returns the fractional remainder, 0 or 0.5.
func (a Axis) Frac() float64 {
	if a.Half {
		return 0.5
	}
	return 0
}

// HalfCount returns 1 when the axis carries a half unit.
func (a Axis) HalfCount() int {
	if a.Half {
		return 1
	}
	return 0
}

// Value reassembles the original dimension. Count + Frac == value exactly.
func (a Axis) Value() float64 {
	return float64(a.Count) + a.Frac()
}

// Decompose splits a dimension on the 0.5 grid into (count, half).
func Decompose(v float64) (Axis, error) {
	if v < 0 {
		return Axis{}, fmt.Errorf("%w: negative dimension %v", ErrInvalidGeometry, v)
	}

	scaled := v * 2
	if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		return Axis{}, fmt.Errorf("%w: dimension %v is off the 0.5 grid", ErrInvalidGeometry, v)
	}

	count := int(math.Floor(v + 1e-9))
	return Axis{Count: count, Half: v-float64(count) > 0.25}, nil
}

// Geometry holds every decomposed dimension plus the raw inputs. All
// calculators read from it and never mutate it.
type Geometry struct {
	Width   Axis
	Height  Axis
	Lengths [4]Axis

	WidthRaw   float64
	HeightRaw  float64
	LengthsRaw [4]float64
}

// NewGeometry decomposes width, the four length slots and height.
// A length slot of 0 means the compartment section is absent.
func NewGeometry(width float64, lengths [4]float64, height float64) (Geometry, error) {
	g := Geometry{WidthRaw: width, HeightRaw: height, LengthsRaw: lengths}

	var err error
	if g.Width, err = Decompose(width); err != nil {
		return Geometry{}, fmt.Errorf("width: %w", err)
	}
	for i, l := range lengths {
		if g.Lengths[i], err = Decompose(l); err != nil {
			return Geometry{}, fmt.Errorf("length%d: %w", i+1, err)
		}
	}
	if g.Height, err = Decompose(height); err != nil {
		return Geometry{}, fmt.Errorf("height: %w", err)
	}

	return g, nil
}

// TotalLength is L_O, the sum of active raw lengths.
func (g Geometry) TotalLength() float64 {
	var sum float64
	for _, l := range g.LengthsRaw {
		sum += l
	}
	return sum
}

// LengthCount is L_O_C, the sum of whole-unit length counts.
func (g Geometry) LengthCount() int {
	var sum int
	for _, l := range g.Lengths {
		sum += l.Count
	}
	return sum
}

// LengthHalves counts the length slots carrying a half unit.
func (g Geometry) LengthHalves() int {
	var sum int
	for _, l := range g.Lengths {
		sum += l.HalfCount()
	}
	return sum
}

// Partitions is N_PA, the number of active secondary length slots.
func (g Geometry) Partitions() int {
	var n int
	for _, l := range g.LengthsRaw[1:] {
		if l > 0 {
			n++
		}
	}
	return n
}

// halfPerimeter is W_C + L_O_C, the unit count along one width and the full
// length. Many legacy formulas are written against this, not 2*(W+L).
func (g Geometry) halfPerimeter() int {
	return g.Width.Count + g.LengthCount()
}

// internalJoints counts interior panel seams: (W_C-1) + (L_O_C-1).
func (g Geometry) internalJoints() int {
	j := 0
	if g.Width.Count > 1 {
		j += g.Width.Count - 1
	}
	if lc := g.LengthCount(); lc > 1 {
		j += lc - 1
	}
	return j
}
