// Package trace is the contract's logging surface. Output lands in the
// host's log at trace level; on hosts running quieter levels the calls are
// cheap no-ops. There is deliberately no other logger in contract code,
// since a WASM guest has no stderr worth writing to.
package trace

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Log emits a bare message.
func Log(h host.Host, msg string) error {
	return check(h.Trace(msg, nil, false))
}

// Data emits a message followed by data rendered as UTF-8.
func Data(h host.Host, msg string, data []byte) error {
	return check(h.Trace(msg, data, false))
}

// Hex emits a message followed by data rendered as hex.
func Hex(h host.Host, msg string, data []byte) error {
	return check(h.Trace(msg, data, true))
}

// Num emits a message and a number.
func Num(h host.Host, msg string, n int64) error {
	return check(h.TraceNum(msg, n))
}

// Account emits a message and an account, rendered in its classic address
// form by the host.
func Account(h host.Host, msg string, account types.AccountID) error {
	return check(h.TraceAccount(msg, account[:]))
}

// Float emits a message and an opaque float, rendered as a decimal by the
// host.
func Float(h host.Host, msg string, f types.OpaqueFloat) error {
	return check(h.TraceOpaqueFloat(msg, f[:]))
}

// Amount emits a message and an amount in its 48-byte padded form.
func Amount(h host.Host, msg string, a types.Amount) error {
	wire, _ := a.Bytes()
	return check(h.TraceAmount(msg, wire[:]))
}

func check(rc int32) error {
	if rc < 0 {
		return host.ErrFromCode(rc)
	}
	return nil
}
