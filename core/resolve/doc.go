// Package resolve computes the effective QR value and title for a widget
// instance from one of three mutually exclusive sources: a record field, a
// URL query parameter, or a statically provided value.
//
// Mode precedence is fixed: record-field mode wins whenever a record id,
// an object type, and a value field name are all configured; otherwise the
// explicit value source selector applies, defaulting to the provided value.
// Toggling inputs that belong to a non-selected mode never changes the
// result.
//
// A missing or blank value at any stage is a normal outcome, reported via
// the boolean second return, never as an error. Fetch failures are the
// caller's concern and must not be conflated with absence.
//
// Usage:
//
//	params := resolve.Params{
//		RecordID:   "001xx0000001",
//		ObjectType: "Account",
//		ValueField: "Website__c",
//	}
//
//	value, ok := resolve.Value(params, snapshot, nil)
//	if !ok {
//		// nothing to render yet
//	}
package resolve
