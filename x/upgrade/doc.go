/*
Package upgrade implements the gate through which the active gateway
logic is replaced.

The gateway routes every operation through the logic version that is
currently active. This package stores the active reference and provides
the single operation that moves it. Two conditions guard the move: the
caller must hold the upgrader role, and the gateway must be paused.
Requiring the pause first makes an upgrade a two step procedure that no
single capability can perform alone, and guarantees that no approval
operation interleaves with the switch.
*/
package upgrade
