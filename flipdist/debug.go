//go:build debug

package flipdist

// debugChecks enables the decomposition invariant assertions.
// Build with -tags debug to activate them.
const debugChecks = true
