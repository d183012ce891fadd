/*
Package approval implements the transaction approval engine.

An owner submits a transaction intent (destination, value, payload). The
record starts with zero confirmations and submission does not confirm
implicitly. Other owners confirm the record, at most once each, and a
confirmation can never be taken back. Once the number of confirmations
reaches the threshold fixed at initialization time, any owner may trigger
execution.

Execution is delegated to the Executor collaborator. The executed flag is
persisted before the executor is invoked, so a reentrant call back into
the engine observes the record as already executed and fails. This
ordering is the complete defense against reentrant double execution. When
the executor reports failure the flag is reverted, a failure notification
is emitted instead of a success one, and the record stays open for a
caller initiated retry.
*/
package approval
