package types

// InstructionKind names one of the 20 validated instruction variants a
// transaction may contain (spec.md §6.1).
type InstructionKind string

const (
	TakeFromWorktop                 InstructionKind = "TakeFromWorktop"
	TakeFromWorktopByAmount         InstructionKind = "TakeFromWorktopByAmount"
	TakeFromWorktopByIds            InstructionKind = "TakeFromWorktopByIds"
	ReturnToWorktop                 InstructionKind = "ReturnToWorktop"
	AssertWorktopContains           InstructionKind = "AssertWorktopContains"
	AssertWorktopContainsByAmount   InstructionKind = "AssertWorktopContainsByAmount"
	AssertWorktopContainsByIds      InstructionKind = "AssertWorktopContainsByIds"
	PopFromAuthZone                 InstructionKind = "PopFromAuthZone"
	PushToAuthZone                  InstructionKind = "PushToAuthZone"
	ClearAuthZone                   InstructionKind = "ClearAuthZone"
	CreateProofFromAuthZone         InstructionKind = "CreateProofFromAuthZone"
	CreateProofFromAuthZoneByAmount InstructionKind = "CreateProofFromAuthZoneByAmount"
	CreateProofFromAuthZoneByIds    InstructionKind = "CreateProofFromAuthZoneByIds"
	CreateProofFromBucket           InstructionKind = "CreateProofFromBucket"
	CloneProof                      InstructionKind = "CloneProof"
	DropProof                       InstructionKind = "DropProof"
	CallFunction                    InstructionKind = "CallFunction"
	CallMethod                      InstructionKind = "CallMethod"
	CallMethodWithAllResources      InstructionKind = "CallMethodWithAllResources"
	PublishPackage                  InstructionKind = "PublishPackage"
)

// ValidatedInstruction is one decoded, statically well-formed instruction
// from a transaction. Only the fields relevant to Kind are populated; the
// rest are left at their zero value. The upstream validator owns decoding
// the wire form into this shape.
type ValidatedInstruction struct {
	Kind InstructionKind

	ResourceAddress ResourceAddress
	Amount          Decimal
	Ids             []NonFungibleId

	BucketId BucketId
	ProofId  ProofId

	PackageAddress   PackageAddress
	BlueprintName    string
	Function         string
	ComponentAddress ComponentAddress
	Method           string
	Args             []Value

	Code []byte
}
