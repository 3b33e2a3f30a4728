//go:build !contracts_off

package common

// ChecksEnabled reports whether contract checks are compiled in.
const ChecksEnabled = true

// Assert panics with msg when cond is false. Contract checks are compiled
// out entirely when the contracts_off build tag is set; violations then go
// undetected.
func Assert(cond bool, msg string) {
	if !cond {
		panic("contract violation: " + msg)
	}
}
