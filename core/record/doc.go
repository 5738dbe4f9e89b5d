// Package record defines the contract between the widget and a record
// data backend: a reactive subscription keyed by record id and field
// list that pushes whole-snapshot updates.
//
// Snapshots are replaced wholesale on every delivery and never mutated
// in place, so a consumer holding a *Snapshot can read it without
// synchronization. An Update carries either a snapshot or an error,
// never both.
//
// MemoryProvider is a complete in-process implementation used by tests
// and demos; integration packages supply production backends.
package record
