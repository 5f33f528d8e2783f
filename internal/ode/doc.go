// Package ode defines the [Func] type shared by the expression compiler
// and the solver, along with the sentinel errors for invalid solver
// configuration, so that the config layer and the solver report the same
// error kinds.
package ode
