//go:build !debug

package flipdist

// debugChecks is off in release builds; the assertion branches compile out.
const debugChecks = false
