package greens

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Mu0 is the vacuum permeability in H/m.
const Mu0 = 4 * math.Pi * 1e-7

// PsiG returns the poloidal flux per unit current, in Wb/A, at (r, z) due
// to a circular filament of radius a in the plane z = b:
//
//	ψ = μ₀·√((a+r)² + (z−b)²)·((1 − m/2)·K(m) − E(m)),  m = 4ar/((a+r)²+(z−b)²)
//
// where K and E are the complete elliptic integrals of the first and second
// kind with parameter m = k². Zero on the axis (r = 0); +Inf at the
// filament itself.
func PsiG(a, b, r, z float64) float64 {
	d2 := (a+r)*(a+r) + (z-b)*(z-b)
	m := 4 * a * r / d2

	return Mu0 * math.Sqrt(d2) * ((1-m/2)*mathext.CompleteK(m) - mathext.CompleteE(m))
}

// BrG returns the radial magnetic field per unit current, in T/A, at
// (r, z) due to a circular filament of radius a in the plane z = b:
//
//	B_R = μ₀/(2π) · (z−b)/(r·√d²₊) · (−K(m) + E(m)·(a² + r² + (z−b)²)/d²₋)
//
// with d²₊ = (a+r)²+(z−b)² and d²₋ = (a−r)²+(z−b)². Zero on the axis by
// symmetry; ±Inf at the filament itself.
func BrG(a, b, r, z float64) float64 {
	if r == 0 {
		return 0
	}
	dz := z - b
	d2p := (a+r)*(a+r) + dz*dz
	d2m := (a-r)*(a-r) + dz*dz
	m := 4 * a * r / d2p

	num := -mathext.CompleteK(m) + mathext.CompleteE(m)*(a*a+r*r+dz*dz)/d2m

	return Mu0 / (2 * math.Pi) * dz / (r * math.Sqrt(d2p)) * num
}

// BzG returns the vertical magnetic field per unit current, in T/A, at
// (r, z) due to a circular filament of radius a in the plane z = b:
//
//	B_Z = μ₀/(2π) · 1/√d²₊ · (K(m) + E(m)·(a² − r² − (z−b)²)/d²₋)
//
// with d²₊ = (a+r)²+(z−b)² and d²₋ = (a−r)²+(z−b)². On the axis this
// reduces to the closed form μ₀a²/(2(a²+(z−b)²)^{3/2}); ±Inf at the
// filament itself.
func BzG(a, b, r, z float64) float64 {
	dz := z - b
	d2p := (a+r)*(a+r) + dz*dz
	d2m := (a-r)*(a-r) + dz*dz
	m := 4 * a * r / d2p

	num := mathext.CompleteK(m) + mathext.CompleteE(m)*(a*a-r*r-dz*dz)/d2m

	return Mu0 / (2 * math.Pi) / math.Sqrt(d2p) * num
}
