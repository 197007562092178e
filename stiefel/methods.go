// SPDX-License-Identifier: MIT
// Package stiefel: method tags for retractions, inverse retractions and transports.

package stiefel

import "fmt"

type retractionKind int

const (
	retractionPolar retractionKind = iota + 1
	retractionQR
	retractionPade
)

// RetractionMethod selects a retraction. Use the package-level values or
// PadeRetraction; the zero value is invalid.
type RetractionMethod struct {
	kind  retractionKind
	order int // Padé order m ≥ 1
}

var (
	// PolarRetraction maps p + tX to its unitary polar factor.
	PolarRetraction = RetractionMethod{kind: retractionPolar}
	// QRRetraction maps p + tX to its sign-corrected Q factor.
	QRRetraction = RetractionMethod{kind: retractionQR}
	// CayleyRetraction is the Padé retraction of order 1.
	CayleyRetraction = PadeRetraction(1)
)

// PadeRetraction returns the Padé(m) retraction, a rational approximation
// of the exponential of the skew operator W(p, X). Orders below 1 yield an
// invalid method.
func PadeRetraction(m int) RetractionMethod {
	return RetractionMethod{kind: retractionPade, order: m}
}

// Order returns the Padé order, or 0 for the non-Padé methods.
func (r RetractionMethod) Order() int { return r.order }

func (r RetractionMethod) valid() bool {
	switch r.kind {
	case retractionPolar, retractionQR:
		return r.order == 0
	case retractionPade:
		return r.order >= 1
	}

	return false
}

// String implements fmt.Stringer.
func (r RetractionMethod) String() string {
	switch {
	case r.kind == retractionPolar:
		return "Polar"
	case r.kind == retractionQR:
		return "QR"
	case r.kind == retractionPade && r.order == 1:
		return "Cayley"
	case r.kind == retractionPade:
		return fmt.Sprintf("Pade(%d)", r.order)
	}

	return "InvalidRetraction"
}

// InverseRetractionMethod selects an inverse retraction.
type InverseRetractionMethod int

const (
	// PolarInverseRetraction inverts PolarRetraction.
	PolarInverseRetraction InverseRetractionMethod = iota + 1
	// QRInverseRetraction inverts QRRetraction.
	QRInverseRetraction
)

// String implements fmt.Stringer.
func (m InverseRetractionMethod) String() string {
	switch m {
	case PolarInverseRetraction:
		return "Polar"
	case QRInverseRetraction:
		return "QR"
	}

	return "InvalidInverseRetraction"
}

type transportKind int

const (
	transportDifferentiated transportKind = iota + 1
	transportProjection
)

// VectorTransportMethod selects a vector transport.
type VectorTransportMethod struct {
	kind       transportKind
	retraction RetractionMethod
}

// ProjectionTransport projects the vector onto the target tangent space.
var ProjectionTransport = VectorTransportMethod{kind: transportProjection}

// DifferentiatedRetraction transports by the differential of r. Cayley,
// Polar and QR are supported; other retractions yield ErrUnsupportedMethod
// when used.
func DifferentiatedRetraction(r RetractionMethod) VectorTransportMethod {
	return VectorTransportMethod{kind: transportDifferentiated, retraction: r}
}

// Retraction returns the retraction a differentiated transport pushes
// forward; the zero RetractionMethod for projection transport.
func (v VectorTransportMethod) Retraction() RetractionMethod { return v.retraction }

// String implements fmt.Stringer.
func (v VectorTransportMethod) String() string {
	switch v.kind {
	case transportProjection:
		return "Projection"
	case transportDifferentiated:
		return fmt.Sprintf("DifferentiatedRetraction(%v)", v.retraction)
	}

	return "InvalidTransport"
}
