/*
Package role implements the registry of named permission sets.

A role is a named capability (owner, upgrader, pauser) and the registry
answers whether a principal holds it. Membership can be changed at
runtime: a grant or revoke must be authorized either by the configured
registry admin or by a principal already holding the same role. Roles are
independent of each other, so revoking one does not touch another.

The registry permits revoking the last owner. This leaves the gateway
permanently unable to submit, confirm, execute or pause, and is kept on
purpose as the documented behavior of the source design. A warning is
logged when it happens.
*/
package role
