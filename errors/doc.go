/*
Package errors implements custom error interfaces for warden.

The idea is to reuse a small set of root errors and wrap them with
additional context. Error equality is tested against the root cause, so
a wrapped error still matches its root via the Is method. Each root
error carries a unique numeric code that is safe to return to clients,
while the full wrapped description stays on the server side.

Packages declaring their own root errors must use the Register function
to ensure code uniqueness.
*/
package errors
