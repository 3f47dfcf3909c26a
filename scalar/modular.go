// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// panicModulusInvalid is raised by Modular on a non-prime modulus (programmer error).
const panicModulusInvalid = "scalar: Modular: modulus must be a prime ≥ 2"

// primalityRounds is the Miller–Rabin round count passed to ProbablyPrime.
const primalityRounds = 20

// modularField implements Field over the integers modulo a prime p.
// Values are uint64 residues; inputs ≥ p are reduced before use, so every
// method is total over uint64.
type modularField struct {
	p uint64 // prime modulus
}

// Modular returns the prime field GF(p) over uint64 residues.
//
// Implementation:
//   - Stage 1: validate p is prime (Miller–Rabin, deterministic for uint64 sizes here).
//   - Stage 2: Add uses bits.Add64 with a single conditional subtraction;
//     Mul uses the 128-bit product from bits.Mul64 reduced with bits.Div64.
//
// Behavior highlights:
//   - Div multiplies by the Fermat inverse b^(p-2); zero divisor → ErrDivisionByZero.
//   - Pow interprets the exponent residue as a non-negative integer.
//   - Parse accepts any decimal integer (including negatives) and reduces it mod p.
//
// Errors:
//   - Panics with a stable message when p is not a prime ≥ 2.
//
// Complexity: Add/Mul O(1); Div/Pow O(log p).
func Modular(p uint64) Field[uint64] {
	if ValidModulus(p) != nil {
		panic(panicModulusInvalid)
	}

	return modularField{p: p}
}

// ValidModulus reports whether p can back a Modular field.
// Use it to validate user input before calling Modular, which panics.
//
// Errors:
//   - ErrInvalidModulus when p < 2 or p is composite.
func ValidModulus(p uint64) error {
	if p < 2 || !new(big.Int).SetUint64(p).ProbablyPrime(primalityRounds) {
		return fmt.Errorf("modulus %d: %w", p, ErrInvalidModulus)
	}

	return nil
}

func (f modularField) Name() string { return "mod" + strconv.FormatUint(f.p, 10) }

func (modularField) Zero() uint64 { return 0 }
func (modularField) One() uint64  { return 1 }

// Copy reduces x to its canonical residue in [0, p).
func (f modularField) Copy(x uint64) uint64 { return x % f.p }

func (f modularField) IsZero(x uint64) bool   { return x%f.p == 0 }
func (f modularField) Equal(a, b uint64) bool { return a%f.p == b%f.p }

func (f modularField) Add(a, b uint64) uint64 {
	a, b = a%f.p, b%f.p
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= f.p {
		sum -= f.p // a+b < 2p, one subtraction is enough (wraps correctly on carry)
	}

	return sum
}

func (f modularField) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a%f.p, b%f.p)
	_, rem := bits.Div64(hi, lo, f.p) // hi < p because both factors are < p

	return rem
}

func (f modularField) Div(a, b uint64) (uint64, error) {
	if f.IsZero(b) {
		return 0, ErrDivisionByZero
	}

	return f.Mul(a, f.pow(b, f.p-2)), nil
}

func (f modularField) Pow(x, p uint64) (uint64, error) {
	return f.pow(x, p), nil
}

// pow is square-and-multiply over residues.
func (f modularField) pow(x, e uint64) uint64 {
	result := uint64(1) % f.p
	base := x % f.p
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
	}

	return result
}

func (f modularField) Format(x uint64) string { return strconv.FormatUint(x%f.p, 10) }

func (f modularField) Parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, literalErrorf(f.Name(), s, nil)
	}
	v.Mod(v, new(big.Int).SetUint64(f.p)) // Mod is Euclidean: result in [0, p)

	return v.Uint64(), nil
}

// String implements fmt.Stringer for diagnostics.
func (f modularField) String() string { return fmt.Sprintf("GF(%d)", f.p) }
