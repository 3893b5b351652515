/*
Package types defines the wire-visible data model of the transaction
instruction interpreter: addresses, amounts, the structured argument
value tree, the validated instruction set, and the authorization
predicate data that flows through arguments unevaluated.

None of these types carry behavior beyond what the interpreter needs to
walk and rewrite them; the authorization rule language in particular is
opaque data owned by on-ledger components (see auth.go) and is never
evaluated here.
*/
package types
