package hosttest

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/types"
)

// The opaque float handle is the ledger's 64-bit issued-value layout,
// big-endian: bit 63 always set, bit 62 the sign (1 positive), bits 61..54
// the exponent biased by 97, bits 53..0 the mantissa. Normalized non-zero
// values keep the mantissa in [1e15, 1e16) and the exponent in [-96, 80].
const (
	floatMinMantissa uint64 = 1_000_000_000_000_000
	floatMaxMantissa uint64 = 9_999_999_999_999_999
	floatMinExp             = -96
	floatMaxExp             = 80
	floatExpBias            = 97

	floatZeroBits uint64 = 1 << 63
	floatSignBit  uint64 = 1 << 62
)

type decFloat struct {
	neg      bool
	mantissa uint64 // zero means the value zero
	exp      int
}

func decodeFloat(b []byte) (decFloat, bool) {
	if len(b) != types.OpaqueFloatSize {
		return decFloat{}, false
	}
	bits := binary.BigEndian.Uint64(b)
	if bits&(1<<63) == 0 {
		return decFloat{}, false
	}
	if bits == floatZeroBits {
		return decFloat{}, true
	}
	f := decFloat{
		neg:      bits&floatSignBit == 0,
		mantissa: bits & ((1 << 54) - 1),
		exp:      int((bits>>54)&0xFF) - floatExpBias,
	}
	if f.mantissa < floatMinMantissa || f.mantissa > floatMaxMantissa {
		return decFloat{}, false
	}
	return f, true
}

func encodeFloat(f decFloat, out []byte) int32 {
	if len(out) < types.OpaqueFloatSize {
		return host.CodeBufferTooSmall
	}
	bits := floatZeroBits
	if f.mantissa != 0 {
		if !f.neg {
			bits |= floatSignBit
		}
		bits |= uint64(f.exp+floatExpBias) << 54
		bits |= f.mantissa
	}
	binary.BigEndian.PutUint64(out, bits)
	return types.OpaqueFloatSize
}

// roundQuo divides v by d, rounding per mode. neg is the sign of the overall
// value; downward and upward round toward minus and plus infinity.
func roundQuo(v *big.Int, d *big.Int, neg bool, mode int32) *big.Int {
	q, r := new(big.Int).QuoRem(v, d, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	bump := false
	switch mode {
	case host.RoundToNearest:
		doubled := new(big.Int).Lsh(r, 1)
		bump = doubled.CmpAbs(d) >= 0
	case host.RoundTowardsZero:
	case host.RoundDownward:
		bump = neg
	case host.RoundUpward:
		bump = !neg
	}
	if bump {
		q.Add(q, big.NewInt(1))
	}
	return q
}

var bigTen = big.NewInt(10)

// normalizeBig folds an arbitrary-precision magnitude at a given exponent
// into the canonical mantissa range. Overflow above the exponent ceiling is
// a computation error; underflow collapses to zero.
func normalizeBig(neg bool, mag *big.Int, exp int, mode int32) (decFloat, int32) {
	if mag.Sign() == 0 {
		return decFloat{}, 0
	}
	maxM := new(big.Int).SetUint64(floatMaxMantissa)
	minM := new(big.Int).SetUint64(floatMinMantissa)

	for mag.Cmp(maxM) > 0 {
		mag = roundQuo(mag, bigTen, neg, mode)
		exp++
	}
	for mag.Sign() != 0 && mag.Cmp(minM) < 0 {
		mag.Mul(mag, bigTen)
		exp--
	}
	if mag.Sign() == 0 {
		return decFloat{}, 0
	}
	for exp < floatMinExp {
		mag = roundQuo(mag, bigTen, neg, mode)
		exp++
		if mag.Sign() == 0 {
			return decFloat{}, 0
		}
	}
	// Rounding during the underflow fold can push the magnitude below the
	// canonical floor; renormalize once more.
	if mag.Cmp(minM) < 0 {
		return decFloat{}, 0
	}
	if mag.Cmp(maxM) > 0 {
		mag = roundQuo(mag, bigTen, neg, mode)
		exp++
	}
	if exp > floatMaxExp {
		return decFloat{}, host.CodeInvalidFloatComputation
	}
	return decFloat{neg: neg, mantissa: mag.Uint64(), exp: exp}, 0
}

func normalizeU64(neg bool, mant uint64, exp int, mode int32) (decFloat, int32) {
	return normalizeBig(neg, new(big.Int).SetUint64(mant), exp, mode)
}

// signedBig returns the value as mantissa scaled to a common exponent.
func signedBig(f decFloat, commonExp int) *big.Int {
	v := new(big.Int).SetUint64(f.mantissa)
	if f.exp > commonExp {
		scale := new(big.Int).Exp(bigTen, big.NewInt(int64(f.exp-commonExp)), nil)
		v.Mul(v, scale)
	}
	if f.neg {
		v.Neg(v)
	}
	return v
}

func (e *Env) FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	neg := value < 0
	mag := uint64(value)
	if neg {
		mag = uint64(-value)
	}
	f, code := normalizeU64(neg, mag, 0, roundingMode)
	if code != 0 {
		return code
	}
	return encodeFloat(f, out)
}

func (e *Env) FloatFromUint(value, out []byte, roundingMode int32) int32 {
	if len(value) != 8 {
		return host.CodeInvalidParams
	}
	f, code := normalizeU64(false, binary.LittleEndian.Uint64(value), 0, roundingMode)
	if code != 0 {
		return code
	}
	return encodeFloat(f, out)
}

func (e *Env) FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	neg := mantissa < 0
	mag := uint64(mantissa)
	if neg {
		mag = uint64(-mantissa)
	}
	f, code := normalizeU64(neg, mag, int(exponent), roundingMode)
	if code != 0 {
		return code
	}
	return encodeFloat(f, out)
}

func (e *Env) FloatCompare(a, b []byte) int32 {
	fa, ok := decodeFloat(a)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	fb, ok := decodeFloat(b)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	switch cmpFloat(fa, fb) {
	case 0:
		return host.FloatEqual
	case 1:
		return host.FloatGreater
	default:
		return host.FloatLess
	}
}

func cmpFloat(a, b decFloat) int {
	if a.mantissa == 0 && b.mantissa == 0 {
		return 0
	}
	if a.mantissa == 0 {
		if b.neg {
			return 1
		}
		return -1
	}
	if b.mantissa == 0 {
		if a.neg {
			return -1
		}
		return 1
	}
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	// Same sign: normalized forms order by exponent, then mantissa.
	mag := 0
	switch {
	case a.exp != b.exp:
		if a.exp > b.exp {
			mag = 1
		} else {
			mag = -1
		}
	case a.mantissa > b.mantissa:
		mag = 1
	case a.mantissa < b.mantissa:
		mag = -1
	}
	if a.neg {
		return -mag
	}
	return mag
}

func (e *Env) floatBinop(a, b, out []byte, mode int32, op func(x, y *big.Int) *big.Int) int32 {
	fa, ok := decodeFloat(a)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	fb, ok := decodeFloat(b)
	if !ok {
		return host.CodeInvalidFloatInput
	}

	commonExp := fa.exp
	if fb.exp < commonExp || fa.mantissa == 0 {
		commonExp = fb.exp
	}
	if fa.mantissa == 0 && fb.mantissa == 0 {
		commonExp = 0
	}
	sum := op(signedBig(fa, commonExp), signedBig(fb, commonExp))

	neg := sum.Sign() < 0
	f, code := normalizeBig(neg, new(big.Int).Abs(sum), commonExp, mode)
	if code != 0 {
		return code
	}
	return encodeFloat(f, out)
}

func (e *Env) FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinop(a, b, out, roundingMode, func(x, y *big.Int) *big.Int {
		return new(big.Int).Add(x, y)
	})
}

func (e *Env) FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return e.floatBinop(a, b, out, roundingMode, func(x, y *big.Int) *big.Int {
		return new(big.Int).Sub(x, y)
	})
}

func (e *Env) FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	fa, ok := decodeFloat(a)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	fb, ok := decodeFloat(b)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	if fa.mantissa == 0 || fb.mantissa == 0 {
		return encodeFloat(decFloat{}, out)
	}
	prod := new(big.Int).Mul(
		new(big.Int).SetUint64(fa.mantissa),
		new(big.Int).SetUint64(fb.mantissa),
	)
	f, code := normalizeBig(fa.neg != fb.neg, prod, fa.exp+fb.exp, roundingMode)
	if code != 0 {
		return code
	}
	return encodeFloat(f, out)
}

func (e *Env) FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	fa, ok := decodeFloat(a)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	fb, ok := decodeFloat(b)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	if fb.mantissa == 0 {
		return host.CodeInvalidFloatComputation
	}
	if fa.mantissa == 0 {
		return encodeFloat(decFloat{}, out)
	}

	// Scale the numerator so the integer quotient keeps 17 significant
	// digits before normalization trims it back to 16.
	neg := fa.neg != fb.neg
	num := new(big.Int).Mul(
		new(big.Int).SetUint64(fa.mantissa),
		new(big.Int).Exp(bigTen, big.NewInt(17), nil),
	)
	q := roundQuo(num, new(big.Int).SetUint64(fb.mantissa), neg, roundingMode)

	f, code := normalizeBig(neg, q, fa.exp-fb.exp-17, roundingMode)
	if code != 0 {
		return code
	}
	return encodeFloat(f, out)
}

func (e *Env) FloatPow(in []byte, n int32, out []byte, roundingMode int32) int32 {
	f, ok := decodeFloat(in)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	if n < 0 {
		return host.CodeInvalidFloatInput
	}

	// Repeated multiplication with renormalization at every step keeps the
	// intermediate mantissa bounded.
	acc := decFloat{mantissa: floatMinMantissa, exp: -15} // one
	for i := int32(0); i < n; i++ {
		prod := new(big.Int).Mul(
			new(big.Int).SetUint64(acc.mantissa),
			new(big.Int).SetUint64(f.mantissa),
		)
		var code int32
		acc, code = normalizeBig(acc.neg != f.neg, prod, acc.exp+f.exp, roundingMode)
		if code != 0 {
			return code
		}
		if acc.mantissa == 0 {
			break
		}
	}
	return encodeFloat(acc, out)
}

func (e *Env) FloatRoot(in []byte, n int32, out []byte, roundingMode int32) int32 {
	f, ok := decodeFloat(in)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	if n <= 0 {
		return host.CodeInvalidFloatInput
	}
	if f.neg {
		return host.CodeInvalidFloatComputation
	}
	if f.mantissa == 0 || n == 1 {
		return encodeFloat(f, out)
	}
	v := toFloat64(f)
	r, code := fromFloat64(math.Pow(v, 1/float64(n)), roundingMode)
	if code != 0 {
		return code
	}
	return encodeFloat(r, out)
}

func (e *Env) FloatLog(in, out []byte, roundingMode int32) int32 {
	f, ok := decodeFloat(in)
	if !ok {
		return host.CodeInvalidFloatInput
	}
	if f.neg || f.mantissa == 0 {
		return host.CodeInvalidFloatComputation
	}
	r, code := fromFloat64(math.Log10(toFloat64(f)), roundingMode)
	if code != 0 {
		return code
	}
	return encodeFloat(r, out)
}

func toFloat64(f decFloat) float64 {
	v := float64(f.mantissa) * math.Pow(10, float64(f.exp))
	if f.neg {
		v = -v
	}
	return v
}

// fromFloat64 re-expresses a binary float as a normalized decimal. The last
// digit carries binary round-off; the root and log operations are documented
// as approximate on real hosts too.
func fromFloat64(x float64, mode int32) (decFloat, int32) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decFloat{}, host.CodeInvalidFloatComputation
	}
	if x == 0 {
		return decFloat{}, 0
	}
	neg := x < 0
	mag := math.Abs(x)

	exp := int(math.Floor(math.Log10(mag))) - 15
	mant := math.Round(mag / math.Pow(10, float64(exp)))
	return normalizeBig(neg, new(big.Int).SetUint64(uint64(mant)), exp, mode)
}
