// Package contract holds the escrow finish-function entry convention. The
// host calls the module's exported finish function and reads a single i32:
// 1 releases the escrow, anything else leaves it locked.
package contract

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/trace"
)

// Finish-function results.
const (
	Deny   int32 = 0
	Permit int32 = 1
)

// Decide folds a contract's outcome into the host result convention. A
// failed contract never releases funds; the error is traced so validators
// running at trace level can see why.
func Decide(h host.Host, allow bool, err error) int32 {
	if err != nil {
		trace.Log(h, "finish function error: "+err.Error())
		return Deny
	}
	if allow {
		return Permit
	}
	return Deny
}
