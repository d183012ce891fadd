/*
Package app assembles the gateway from the extension packages.

A Gateway owns the state store and a set of logic versions. Each logic
version is a Router holding the message handlers of that version. Every
incoming operation is dispatched through the logic version that the
upgrade gate declares active, on a cache wrap of the store. The wrap is
committed only when the handler succeeds, so a failed operation leaves
no partial mutation behind.

The Initializer consumes the genesis configuration and writes the
initial role membership, confirmation threshold, pause policy and
active logic reference. It runs exactly once, a second initialization
attempt fails.
*/
package app
