package cash

import "math"

// Project maps an attribute vector onto its Hough-space scalar delta for the
// given rotation angle vector. anglesDeg holds len(attrs)-1 angles in degrees;
// a trailing zero angle is implied for the last dimension, so with d = len(attrs):
//
//	delta = Σ_{i=1..d} attrs[i] · Π_{j<i} sin(angles[j]) · cos(angles[i])
//
// Project is a pure function: identical inputs yield bit-identical output.
func Project(attrs []float64, anglesDeg []float64) float64 {
	delta := 0.0
	sinProd := 1.0
	for i, a := range attrs {
		cos := 1.0 // cos of the implied trailing zero angle
		if i < len(anglesDeg) {
			cos = math.Cos(anglesDeg[i] * math.Pi / 180)
		}
		delta += a * sinProd * cos
		if i < len(anglesDeg) {
			sinProd *= math.Sin(anglesDeg[i] * math.Pi / 180)
		}
	}
	return delta
}
