package types

// The authorization predicate language embedded in component arguments
// (spec.md §6.3) is transmitted verbatim by the interpreter; it never
// evaluates these values. They are plain data types here; they are not
// Value kinds, and the value rewriter does not inspect them.

// ResourceSpecifierKind discriminates how a ResourceSpecifier names the
// resource(s) a rule node is checking against.
type ResourceSpecifierKind int

const (
	// SpecifierNonFungibleAddress pins a specific non-fungible unit.
	SpecifierNonFungibleAddress ResourceSpecifierKind = iota
	// SpecifierResourceDefId pins a whole resource definition.
	SpecifierResourceDefId
	// SpecifierSborPath resolves against a path into component state at
	// evaluation time, so the concrete resource is not known here.
	SpecifierSborPath
)

// NonFungibleAddress names one non-fungible unit of one resource.
type NonFungibleAddress struct {
	ResourceAddress ResourceAddress
	Id              NonFungibleId
}

// SborPath points into a component's own state to resolve a resource
// specifier dynamically; its structure is opaque to the interpreter.
type SborPath string

// ResourceSpecifier names the resource(s) a RuleNode checks holding of.
type ResourceSpecifier struct {
	Kind ResourceSpecifierKind

	NonFungible NonFungibleAddress
	ResourceDef ResourceAddress
	Path        SborPath
}

// ResourceSpecifierList is a list of specifiers, each either static or
// state-referenced, as used by RuleNode.CountOf.
type ResourceSpecifierList []ResourceSpecifier

// RuleNodeKind discriminates the shape of a RuleNode.
type RuleNodeKind int

const (
	RuleThis RuleNodeKind = iota
	RuleAmountOf
	RuleCountOf
	RuleAllOf
	RuleAnyOf
)

// RuleNode is one node of the authorization rule tree: This(spec),
// AmountOf(n,spec), CountOf(k,list), AllOf(list), AnyOf(list). Evaluation
// of this tree is entirely the engine's responsibility; the interpreter
// only carries it through instruction arguments.
type RuleNode struct {
	Kind RuleNodeKind

	Specifier ResourceSpecifier
	Amount    Decimal
	Count     uint32
	List      ResourceSpecifierList
	Children  []RuleNode
}
