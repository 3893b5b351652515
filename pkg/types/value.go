package types

// ValueKind discriminates the leaf and container shapes a ScryptoValue
// may take. The interpreter only inspects Tuple, Array, Enum, Bucket and
// Proof; every other kind is opaque payload it carries unchanged.
type ValueKind int

const (
	KindUnit ValueKind = iota
	KindBool
	KindU8
	KindU32
	KindU64
	KindString
	KindDecimal
	KindResourceAddress
	KindNonFungibleId
	KindTuple
	KindArray
	KindEnum
	KindBucket
	KindProof
	KindPackageAddress
)

// Value is a self-describing structured value: trees of primitives,
// tuples, variants and sequences, plus the two custom leaf kinds the
// interpreter cares about, Bucket and Proof. It is the Go shape of
// ScryptoValue (spec.md §3).
type Value struct {
	Kind ValueKind

	Bool         bool
	U8           uint8
	U32          uint32
	U64          uint64
	Str          string
	Dec          Decimal
	ResourceAddr ResourceAddress
	NFId         NonFungibleId

	// Elements holds children for KindTuple and KindArray.
	Elements []Value

	// Variant and Fields hold the tag and payload for KindEnum.
	Variant string
	Fields  []Value

	Bucket  BucketId
	Proof   ProofId
	Package PackageAddress
}

func Unit() Value                 { return Value{Kind: KindUnit} }
func BoolValue(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func U8Value(v uint8) Value       { return Value{Kind: KindU8, U8: v} }
func U32Value(v uint32) Value     { return Value{Kind: KindU32, U32: v} }
func U64Value(v uint64) Value     { return Value{Kind: KindU64, U64: v} }
func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func DecimalValue(d Decimal) Value {
	return Value{Kind: KindDecimal, Dec: d}
}

// TupleValue builds a fixed-arity, heterogeneous container.
func TupleValue(elems ...Value) Value {
	return Value{Kind: KindTuple, Elements: elems}
}

// ArrayValue builds a homogeneous sequence.
func ArrayValue(elems ...Value) Value {
	return Value{Kind: KindArray, Elements: elems}
}

// EnumValue builds a tagged variant with its payload fields.
func EnumValue(variant string, fields ...Value) Value {
	return Value{Kind: KindEnum, Variant: variant, Fields: fields}
}

// BucketValue wraps a transaction-scoped or engine-scoped bucket id as a
// leaf value, as embedded in instruction arguments.
func BucketValue(id BucketId) Value {
	return Value{Kind: KindBucket, Bucket: id}
}

// ProofValue wraps a bucket/proof id the same way BucketValue does, for proofs.
func ProofValue(id ProofId) Value {
	return Value{Kind: KindProof, Proof: id}
}

// PackageAddressValue wraps a freshly published package's address, as
// emitted by PublishPackage.
func PackageAddressValue(addr PackageAddress) Value {
	return Value{Kind: KindPackageAddress, Package: addr}
}
