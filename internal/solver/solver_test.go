package solver_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/akline/eulergrid/internal/ode"
	"github.com/akline/eulergrid/internal/solver"
)

var _ = Describe("GenerateMesh", func() {
	It("produces the exact quarter points on [0, 1] with 4 steps", func() {
		mesh := solver.GenerateMesh(0.0, 1.0, 4)
		Expect(mesh).To(Equal([]float64{0.0, 0.25, 0.5, 0.75, 1.0}))
	})

	It("has n+1 points with exact endpoints and uniform spacing", func() {
		tStart, tEnd := -1.5, 3.7
		n := 137

		mesh := solver.GenerateMesh(tStart, tEnd, n)
		Expect(mesh).To(HaveLen(n + 1))
		Expect(mesh[0]).To(Equal(tStart))
		Expect(mesh[n]).To(BeNumerically("~", tEnd, 1e-12))

		h := (tEnd - tStart) / float64(n)
		for i := 0; i < n; i++ {
			Expect(mesh[i+1] - mesh[i]).To(BeNumerically("~", h, 1e-12))
		}
	})
})

var _ = Describe("Solver", func() {
	identity := ode.Func(func(t, y float64) float64 { return y })

	It("starts the solution exactly at y0", func() {
		s, err := solver.New(identity, 0.0, 2.0, 3.25, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Solution()[0]).To(Equal(3.25))
	})

	It("approximates dy/dt = y towards e over [0, 1]", func() {
		s, err := solver.New(identity, 0.0, 1.0, 1.0, 10)
		Expect(err).NotTo(HaveOccurred())

		sol := s.Solution()
		Expect(sol).To(HaveLen(11))
		Expect(sol[10]).To(BeNumerically("~", math.E, 0.5))
	})

	It("keeps a zero right-hand side constant at y0", func() {
		zero := ode.Func(func(t, y float64) float64 { return 0 })

		s, err := solver.New(zero, 0.0, 5.0, -7.5, 20)
		Expect(err).NotTo(HaveOccurred())
		for _, y := range s.Solution() {
			Expect(y).To(Equal(-7.5))
		}
	})

	It("converges with first order as the mesh is refined", func() {
		errAt := func(n int) float64 {
			s, err := solver.New(identity, 0.0, 1.0, 1.0, n)
			Expect(err).NotTo(HaveOccurred())
			return math.Abs(s.Solution()[n] - math.E)
		}

		// Halving h should roughly halve the global error.
		ratio := errAt(100) / errAt(200)
		Expect(ratio).To(BeNumerically("~", 2.0, 0.2))
	})

	It("produces identical trajectories for identical inputs", func() {
		f := ode.Func(func(t, y float64) float64 { return math.Cos(t) - y })

		a, err := solver.New(f, 0.0, 5.0, 1.0, 100)
		Expect(err).NotTo(HaveOccurred())
		b, err := solver.New(f, 0.0, 5.0, 1.0, 100)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Mesh()).To(Equal(b.Mesh()))
		Expect(a.Solution()).To(Equal(b.Solution()))
	})

	It("reports the configured step size and step count", func() {
		s, err := solver.New(identity, 0.0, 1.0, 1.0, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.StepSize()).To(Equal(0.125))
		Expect(s.NumSteps()).To(Equal(8))
	})

	It("yields index-aligned (t, y) pairs", func() {
		s, err := solver.New(identity, 0.0, 1.0, 1.0, 4)
		Expect(err).NotTo(HaveOccurred())

		var ts, ys []float64
		for t, y := range s.Points() {
			ts = append(ts, t)
			ys = append(ys, y)
		}
		Expect(ts).To(Equal(s.Mesh()))
		Expect(ys).To(Equal(s.Solution()))
	})

	It("stops early when the consumer breaks out of Points", func() {
		s, err := solver.New(identity, 0.0, 1.0, 1.0, 10)
		Expect(err).NotTo(HaveOccurred())

		count := 0
		for range s.Points() {
			count++
			if count == 3 {
				break
			}
		}
		Expect(count).To(Equal(3))
	})

	Describe("invalid configuration", func() {
		It("rejects a zero step count", func() {
			_, err := solver.New(identity, 0.0, 1.0, 1.0, 0)
			Expect(err).To(MatchError(ode.ErrStepCount))
		})

		It("rejects a negative step count", func() {
			_, err := solver.New(identity, 0.0, 1.0, 1.0, -3)
			Expect(err).To(MatchError(ode.ErrStepCount))
		})

		// Reverse-time integration is not supported: the domain end
		// must strictly exceed the start.
		It("rejects tEnd equal to tStart", func() {
			_, err := solver.New(identity, 1.0, 1.0, 1.0, 10)
			Expect(err).To(MatchError(ode.ErrDomain))
		})

		It("rejects tEnd before tStart", func() {
			_, err := solver.New(identity, 1.0, 0.0, 1.0, 10)
			Expect(err).To(MatchError(ode.ErrDomain))
		})
	})
})
