package ode

// Func is the right-hand side of a scalar first-order ODE dy/dt = f(t, y).
// Implementations must be deterministic and side-effect free: the solver
// calls f once per step and assumes identical inputs give identical outputs.
type Func func(t, y float64) float64
