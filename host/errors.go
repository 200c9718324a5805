package host

// Error codes returned by host functions. All codes are negative; a
// non-negative return value means success. These values are part of the wire
// protocol between the contract and the host and must not be renumbered.
const (
	// CodeInternalError is reserved for internal invariant trips, generally
	// unrelated to inputs.
	CodeInternalError int32 = -1
	// CodeFieldNotFound means the requested serialized field could not be
	// found in the specified object.
	CodeFieldNotFound int32 = -2
	// CodeBufferTooSmall means the provided buffer is too small to hold the
	// requested data.
	CodeBufferTooSmall int32 = -3
	// CodeNoArray means the object under analysis is not an STArray.
	CodeNoArray int32 = -4
	// CodeNotLeafField means the field is not a leaf field and cannot be
	// accessed directly.
	CodeNotLeafField int32 = -5
	// CodeLocatorMalformed means the provided locator is malformed.
	CodeLocatorMalformed int32 = -6
	// CodeSlotOutRange means the slot number is outside the valid range.
	CodeSlotOutRange int32 = -7
	// CodeSlotsFull means no free cache slots are available.
	CodeSlotsFull int32 = -8
	// CodeEmptySlot means the slot did not contain any slotted data.
	CodeEmptySlot int32 = -9
	// CodeLedgerObjNotFound means the requested ledger object could not be
	// found.
	CodeLedgerObjNotFound int32 = -10
	// CodeInvalidDecoding means an error occurred while decoding serialized
	// data.
	CodeInvalidDecoding int32 = -11
	// CodeDataFieldTooLarge means the data field is too large to be processed.
	CodeDataFieldTooLarge int32 = -12
	// CodePointerOutOfBounds means a pointer or length described memory
	// outside the allowed region.
	CodePointerOutOfBounds int32 = -13
	// CodeNoMemExported means the WebAssembly module exported no memory.
	CodeNoMemExported int32 = -14
	// CodeInvalidParams means one or more parameters are invalid.
	CodeInvalidParams int32 = -15
	// CodeInvalidAccount means the account identifier is invalid.
	CodeInvalidAccount int32 = -16
	// CodeInvalidField means the field identifier is invalid or the bytes
	// violate the field type's shape.
	CodeInvalidField int32 = -17
	// CodeIndexOutOfBounds means the index is outside the bounds of the array.
	CodeIndexOutOfBounds int32 = -18
	// CodeInvalidFloatInput means the floating-point input is malformed.
	CodeInvalidFloatInput int32 = -19
	// CodeInvalidFloatComputation means a floating-point computation failed.
	CodeInvalidFloatComputation int32 = -20
)

// Error is a host failure identified by its negative return code.
type Error struct {
	code int32
}

var errorNames = map[int32]string{
	CodeInternalError:           "internal error",
	CodeFieldNotFound:           "field not found",
	CodeBufferTooSmall:          "buffer too small",
	CodeNoArray:                 "not an array",
	CodeNotLeafField:            "not a leaf field",
	CodeLocatorMalformed:        "locator malformed",
	CodeSlotOutRange:            "slot out of range",
	CodeSlotsFull:               "no free slots",
	CodeEmptySlot:               "empty slot",
	CodeLedgerObjNotFound:       "ledger object not found",
	CodeInvalidDecoding:         "invalid decoding",
	CodeDataFieldTooLarge:       "data field too large",
	CodePointerOutOfBounds:      "pointer out of bounds",
	CodeNoMemExported:           "no memory exported",
	CodeInvalidParams:           "invalid parameters",
	CodeInvalidAccount:          "invalid account",
	CodeInvalidField:            "invalid field",
	CodeIndexOutOfBounds:        "index out of bounds",
	CodeInvalidFloatInput:       "invalid float input",
	CodeInvalidFloatComputation: "invalid float computation",
}

// Canonical error values, one per host code. ErrFromCode returns these same
// instances so errors.Is comparisons work on the result of any host call.
var (
	ErrInternal                = &Error{CodeInternalError}
	ErrFieldNotFound           = &Error{CodeFieldNotFound}
	ErrBufferTooSmall          = &Error{CodeBufferTooSmall}
	ErrNoArray                 = &Error{CodeNoArray}
	ErrNotLeafField            = &Error{CodeNotLeafField}
	ErrLocatorMalformed        = &Error{CodeLocatorMalformed}
	ErrSlotOutRange            = &Error{CodeSlotOutRange}
	ErrSlotsFull               = &Error{CodeSlotsFull}
	ErrEmptySlot               = &Error{CodeEmptySlot}
	ErrLedgerObjNotFound       = &Error{CodeLedgerObjNotFound}
	ErrInvalidDecoding         = &Error{CodeInvalidDecoding}
	ErrDataFieldTooLarge       = &Error{CodeDataFieldTooLarge}
	ErrPointerOutOfBounds      = &Error{CodePointerOutOfBounds}
	ErrNoMemExported           = &Error{CodeNoMemExported}
	ErrInvalidParams           = &Error{CodeInvalidParams}
	ErrInvalidAccount          = &Error{CodeInvalidAccount}
	ErrInvalidField            = &Error{CodeInvalidField}
	ErrIndexOutOfBounds        = &Error{CodeIndexOutOfBounds}
	ErrInvalidFloatInput       = &Error{CodeInvalidFloatInput}
	ErrInvalidFloatComputation = &Error{CodeInvalidFloatComputation}
)

var errorsByCode = map[int32]*Error{
	CodeInternalError:           ErrInternal,
	CodeFieldNotFound:           ErrFieldNotFound,
	CodeBufferTooSmall:          ErrBufferTooSmall,
	CodeNoArray:                 ErrNoArray,
	CodeNotLeafField:            ErrNotLeafField,
	CodeLocatorMalformed:        ErrLocatorMalformed,
	CodeSlotOutRange:            ErrSlotOutRange,
	CodeSlotsFull:               ErrSlotsFull,
	CodeEmptySlot:               ErrEmptySlot,
	CodeLedgerObjNotFound:       ErrLedgerObjNotFound,
	CodeInvalidDecoding:         ErrInvalidDecoding,
	CodeDataFieldTooLarge:       ErrDataFieldTooLarge,
	CodePointerOutOfBounds:      ErrPointerOutOfBounds,
	CodeNoMemExported:           ErrNoMemExported,
	CodeInvalidParams:           ErrInvalidParams,
	CodeInvalidAccount:          ErrInvalidAccount,
	CodeInvalidField:            ErrInvalidField,
	CodeIndexOutOfBounds:        ErrIndexOutOfBounds,
	CodeInvalidFloatInput:       ErrInvalidFloatInput,
	CodeInvalidFloatComputation: ErrInvalidFloatComputation,
}

// ErrFromCode maps a negative host return code to its canonical Error.
// Unknown codes map to ErrInternal.
func ErrFromCode(code int32) *Error {
	if e, ok := errorsByCode[code]; ok {
		return e
	}
	return ErrInternal
}

// Code returns the raw host error code.
func (e *Error) Code() int32 { return e.code }

func (e *Error) Error() string {
	if name, ok := errorNames[e.code]; ok {
		return name
	}
	return "unknown host error"
}
