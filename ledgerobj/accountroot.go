package ledgerobj

import (
	"errors"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// AccountRoot ledger entry type code.
const LedgerEntryTypeAccountRoot uint16 = 0x0061

// AccountRootObject wraps a cached AccountRoot entry.
type AccountRootObject struct {
	Object
}

// CacheAccountRoot caches the AccountRoot entry of the given account.
func CacheAccountRoot(h host.Host, account types.AccountID) (AccountRootObject, error) {
	var k [types.Hash256Size]byte
	if err := host.ResultExact(h.AccountKeylet(account[:], k[:]), types.Hash256Size); err != nil {
		return AccountRootObject{}, err
	}
	o, err := Cache(h, types.Hash256(k))
	if err != nil {
		return AccountRootObject{}, err
	}
	return AccountRootObject{o}, nil
}

func (a AccountRootObject) Account() (types.AccountID, error) {
	return GetObjField(a.Object, sfield.Account)
}

func (a AccountRootObject) Balance() (types.Amount, bool, error) {
	return GetObjFieldOptional(a.Object, sfield.Balance)
}

func (a AccountRootObject) Sequence() (uint32, error) {
	return GetObjField(a.Object, sfield.Sequence)
}

func (a AccountRootObject) OwnerCount() (uint32, error) {
	return GetObjField(a.Object, sfield.OwnerCount)
}

func (a AccountRootObject) RegularKey() (types.AccountID, bool, error) {
	return GetObjFieldOptional(a.Object, sfield.RegularKey)
}

// AccountBalance looks up an account's balance, reporting absence rather
// than failing when the account does not exist.
func AccountBalance(h host.Host, account types.AccountID) (types.Amount, bool, error) {
	root, err := CacheAccountRoot(h, account)
	if errors.Is(err, host.ErrLedgerObjNotFound) {
		return types.Amount{}, false, nil
	}
	if err != nil {
		return types.Amount{}, false, err
	}
	return root.Balance()
}
