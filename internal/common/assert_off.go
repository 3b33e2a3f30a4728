//go:build contracts_off

package common

// ChecksEnabled reports whether contract checks are compiled in.
const ChecksEnabled = false

// Assert is a no-op in contracts_off builds.
func Assert(bool, string) {}
