package drag

import "math"

// ScaleFactor converts a cell of pointer travel into step units.
const ScaleFactor = 0.1

// PrecisionSensitivity applies while the precision modifier is held.
const PrecisionSensitivity = 0.1

// Bounds is an optional [Min, Max] range.
type Bounds struct {
	Min, Max       float64
	HasMin, HasMax bool
}

// Between returns bounds with both ends set.
func Between(lo, hi float64) Bounds {
	return Bounds{Min: lo, Max: hi, HasMin: true, HasMax: true}
}

// Clamp limits v to the configured ends.
func (b Bounds) Clamp(v float64) float64 {
	if b.HasMin {
		v = math.Max(b.Min, v)
	}
	if b.HasMax {
		v = math.Min(b.Max, v)
	}
	return v
}

// Sensitivity returns the multiplier for a drag with or without the precision
// modifier.
func Sensitivity(precise bool) float64 {
	if precise {
		return PrecisionSensitivity
	}
	return 1
}

// Value returns the value for a drag that started at start and has moved
// deltaX cells.
func Value(start float64, deltaX int, step, sensitivity float64, b Bounds) float64 {
	return b.Clamp(start + float64(deltaX)*step*sensitivity*ScaleFactor)
}
