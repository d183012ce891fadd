/*
Package warden defines all common interfaces that tie together the
multi-party transaction approval gateway, as well as implementations of
some of the simpler components (when interfaces would be too much
overhead).

A gateway is a bounded set of registered principals (owners) that jointly
authorize outgoing actions. An owner submits a transaction intent, other
owners confirm it, and once the number of confirmations reaches the
required threshold any owner may trigger execution. Execution is delegated
to an external Action Executor that performs the actual outbound call.

The package layout follows the extension pattern: every feature lives in
its own package under x/ and is wired together by the app package. State
is kept in a key-value store behind the orm package buckets, so the logic
modules can be replaced (see x/upgrade) without touching stored data.
*/
package warden
