package types

import (
	"fmt"
	"math/big"
)

// Hash is a 32-byte content digest identifying a raw transaction.
type Hash [32]byte

func (h Hash) String() string {
	return fmt.Sprintf("%x", [32]byte(h))
}

// PublicKey is an ECDSA public key carried by a transaction's signer list.
type PublicKey []byte

// ResourceAddress identifies a fungible or non-fungible resource on the ledger.
type ResourceAddress string

// PackageAddress identifies on-ledger code published via PublishPackage.
type PackageAddress string

// ComponentAddress identifies an instantiated component on the ledger.
type ComponentAddress string

// NonFungibleId identifies a single non-fungible unit within a ResourceAddress.
// Sets of NonFungibleId are compared as sets, never by order.
type NonFungibleId string

// NonFungibleIdSet builds a set from a slice of NonFungibleId, so that two
// slices can be compared as sets.
func NonFungibleIdSet(ids []NonFungibleId) map[NonFungibleId]struct{} {
	set := make(map[NonFungibleId]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// BucketId is a 32-bit identifier for a bucket, either transaction-scoped
// (issued by the IdAllocator) or engine-scoped (returned by the Process
// contract). The two spaces never alias within a single run.
type BucketId uint32

// ProofId is a 32-bit identifier for a proof, with the same transaction-
// scoped/engine-scoped distinction as BucketId.
type ProofId uint32

// decimalScale is the number of fractional digits Decimal keeps internally,
// matching the ledger's fixed-point amount precision.
const decimalScale = 18

var decimalScaleFactor = new(big.Int).Exp(big.NewInt(10), big.NewInt(decimalScale), nil)

// Decimal is a fixed-point signed decimal with exact equality and ordering,
// used for resource amounts. The zero value is the decimal zero.
type Decimal struct {
	// scaled holds the value multiplied by 10^decimalScale.
	scaled *big.Int
}

// NewDecimal builds a Decimal from an integer number of whole units.
func NewDecimal(units int64) Decimal {
	return Decimal{scaled: new(big.Int).Mul(big.NewInt(units), decimalScaleFactor)}
}

// ParseDecimal parses a base-10 string (optionally signed, optionally
// containing a fractional part) into a Decimal.
func ParseDecimal(s string) (Decimal, error) {
	f, ok := new(big.Float).SetPrec(256).SetString(s)
	if !ok {
		return Decimal{}, fmt.Errorf("invalid decimal literal %q", s)
	}
	scaledFloat := new(big.Float).Mul(f, new(big.Float).SetInt(decimalScaleFactor))
	scaled, _ := scaledFloat.Int(nil)
	return Decimal{scaled: scaled}, nil
}

func (d Decimal) bigOrZero() *big.Int {
	if d.scaled == nil {
		return new(big.Int)
	}
	return d.scaled
}

// Add returns d + other.
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{scaled: new(big.Int).Add(d.bigOrZero(), other.bigOrZero())}
}

// Sub returns d - other.
func (d Decimal) Sub(other Decimal) Decimal {
	return Decimal{scaled: new(big.Int).Sub(d.bigOrZero(), other.bigOrZero())}
}

// Cmp returns -1, 0 or 1 as d is less than, equal to, or greater than other.
func (d Decimal) Cmp(other Decimal) int {
	return d.bigOrZero().Cmp(other.bigOrZero())
}

// IsZero reports whether d is exactly zero.
func (d Decimal) IsZero() bool {
	return d.bigOrZero().Sign() == 0
}

// GreaterThanOrEqual reports whether d >= other.
func (d Decimal) GreaterThanOrEqual(other Decimal) bool {
	return d.Cmp(other) >= 0
}

func (d Decimal) String() string {
	scaled := d.bigOrZero()
	neg := scaled.Sign() < 0
	abs := new(big.Int).Abs(scaled)

	whole := new(big.Int)
	frac := new(big.Int)
	whole.QuoRem(abs, decimalScaleFactor, frac)

	fracStr := frac.String()
	for len(fracStr) < decimalScale {
		fracStr = "0" + fracStr
	}
	// trim trailing zeros; an all-zero fraction is dropped entirely
	end := len(fracStr)
	for end > 0 && fracStr[end-1] == '0' {
		end--
	}

	sign := ""
	if neg {
		sign = "-"
	}
	if end == 0 {
		return fmt.Sprintf("%s%s", sign, whole.String())
	}
	return fmt.Sprintf("%s%s.%s", sign, whole.String(), fracStr[:end])
}
