// Package ledger exposes the closed-ledger header values visible to a
// contract.
package ledger

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Sequence returns the sequence number of the ledger the transaction is
// executing in.
func Sequence(h host.Host) (uint32, error) {
	rc := h.GetLedgerSqn()
	if rc < 0 {
		return 0, host.ErrFromCode(rc)
	}
	return uint32(rc), nil
}

// ParentTime returns the close time of the parent ledger, in seconds since
// the ledger epoch.
func ParentTime(h host.Host) (uint32, error) {
	rc := h.GetParentLedgerTime()
	if rc < 0 {
		return 0, host.ErrFromCode(rc)
	}
	return uint32(rc), nil
}

// ParentHash returns the hash of the parent ledger.
func ParentHash(h host.Host) (types.Hash256, error) {
	var buf [types.Hash256Size]byte
	if err := host.ResultExact(h.GetParentLedgerHash(buf[:]), types.Hash256Size); err != nil {
		return types.Hash256{}, err
	}
	return types.Hash256(buf), nil
}

// BaseFee returns the current base fee in drops.
func BaseFee(h host.Host) (uint32, error) {
	rc := h.GetBaseFee()
	if rc < 0 {
		return 0, host.ErrFromCode(rc)
	}
	return uint32(rc), nil
}

// AmendmentEnabled reports whether the amendment identified by the 32-byte
// amendment hash is active.
func AmendmentEnabled(h host.Host, amendment types.Hash256) (bool, error) {
	rc := h.AmendmentEnabled(amendment[:])
	if rc < 0 {
		return false, host.ErrFromCode(rc)
	}
	return rc == 1, nil
}
