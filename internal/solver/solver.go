// Package solver advances a scalar first-order ODE dy/dt = f(t, y) over a
// uniform time mesh with the forward Euler method.
//
// A [Solver] computes its entire trajectory at construction; once New
// returns, the instance is immutable and safe to read from anywhere.
package solver

import (
	"iter"

	"github.com/akline/eulergrid/internal/ode"
)

// Solver holds a fully computed forward Euler trajectory.
type Solver struct {
	f        ode.Func
	tStart   float64
	tEnd     float64
	y0       float64
	numSteps int
	stepSize float64
	mesh     []float64
	solution []float64
}

// New validates the inputs, builds the mesh and eagerly computes the
// solution. It fails with ode.ErrStepCount when n < 1 and with
// ode.ErrDomain when tEnd does not exceed tStart; after a nil error the
// trajectory is complete.
func New(f ode.Func, tStart, tEnd, y0 float64, n int) (*Solver, error) {
	if n < 1 {
		return nil, ode.ErrStepCount
	}
	if tEnd <= tStart {
		return nil, ode.ErrDomain
	}

	s := &Solver{
		f:        f,
		tStart:   tStart,
		tEnd:     tEnd,
		y0:       y0,
		numSteps: n,
		stepSize: (tEnd - tStart) / float64(n),
		mesh:     GenerateMesh(tStart, tEnd, n),
	}
	s.solution = s.solve()
	return s, nil
}

// GenerateMesh returns n+1 uniformly spaced points from tStart to tEnd
// inclusive. Each point is computed additively from the start of the
// domain rather than by repeated summation, so rounding error does not
// accumulate across the mesh.
func GenerateMesh(tStart, tEnd float64, n int) []float64 {
	h := (tEnd - tStart) / float64(n)
	mesh := make([]float64, n+1)
	for i := range mesh {
		mesh[i] = tStart + float64(i)*h
	}
	return mesh
}

// solve runs the forward Euler recurrence over the mesh:
// y[k+1] = y[k] + h*f(t[k], y[k]).
func (s *Solver) solve() []float64 {
	y := make([]float64, s.numSteps+1)
	y[0] = s.y0
	for k := 0; k < s.numSteps; k++ {
		y[k+1] = y[k] + s.stepSize*s.f(s.mesh[k], y[k])
	}
	return y
}

// Mesh returns the time points of the trajectory. Callers must not modify
// the returned slice.
func (s *Solver) Mesh() []float64 {
	return s.mesh
}

// Solution returns the approximated y values, index-aligned with Mesh.
// Callers must not modify the returned slice.
func (s *Solver) Solution() []float64 {
	return s.solution
}

// StepSize returns the constant mesh spacing h = (tEnd - tStart) / n.
func (s *Solver) StepSize() float64 {
	return s.stepSize
}

// NumSteps returns the configured step count n; the trajectory holds n+1
// points.
func (s *Solver) NumSteps() int {
	return s.numSteps
}

// Points yields the (t, y) pairs of the trajectory in mesh order.
func (s *Solver) Points() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i, t := range s.mesh {
			if !yield(t, s.solution[i]) {
				return
			}
		}
	}
}
