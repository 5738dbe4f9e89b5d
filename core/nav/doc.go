// Package nav models the current navigation context as a mapping of URL
// query parameter names to values, delivered reactively: subscribers
// receive a fresh State on every navigation event.
//
// The widget reads at most one key from it, and only in URL-parameter
// mode. State values are replaced wholesale per navigation, never
// patched.
package nav
