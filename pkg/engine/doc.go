/*
Package engine defines the narrow contract the instruction interpreter
consumes from the component execution engine (spec.md §6.2): the Process
interface. The engine itself — the WASM-like host, the substate store,
authorization rule evaluation — is an out-of-scope external collaborator;
this package only names the operations the interpreter is allowed to call.

It also ships ReferenceEngine, an in-memory implementation of that same
contract used by the interpreter's own tests and by the txscope CLI's run
command. It is deliberately simple: resources are tracked as plain maps
rather than anything resembling real ledger storage, because its only job
is to make the interpreter's observable behavior checkable without a real
component execution engine.
*/
package engine
