package types

import "github.com/LeJamon/goXRPLwasm/host"

// ContractDataSize caps the opaque Data blob an escrow carries for its
// contract. UpdateData rejects anything larger before the host is called.
const ContractDataSize = 4096

// ContractData is the escrow's opaque data blob together with its meaningful
// length. The backing array is fixed-capacity; Len bytes of it are valid.
type ContractData struct {
	Data [ContractDataSize]byte
	Len  int
}

// NewContractData copies data into a bounded ContractData.
func NewContractData(data []byte) (ContractData, error) {
	var cd ContractData
	if len(data) > ContractDataSize {
		return cd, host.ErrDataFieldTooLarge
	}
	cd.Len = copy(cd.Data[:], data)
	return cd, nil
}

// Bytes returns the valid prefix of the data.
func (cd ContractData) Bytes() []byte { return cd.Data[:cd.Len] }
