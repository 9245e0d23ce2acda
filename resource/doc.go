// Package resource provides the handle table through which a host runtime
// refers to Go values.
//
// A handle is an opaque uint32. Inserting a value hands it to the table; the
// table keeps it alive until the handle is removed or the table is closed.
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	handle := table.Insert(typeID, peer)
//
//	// Retrieve value by handle
//	value, ok := table.Get(handle)
//
//	// Type-checked retrieval
//	value, ok := table.GetTyped(handle, typeID)
//
//	// Release; values implementing Dropper are dropped
//	value, ok := table.Remove(handle)
//
// # Stale Handles
//
// Slots are reused, but each reuse bumps the slot generation encoded in the
// handle. A removed handle stays invalid even after its slot holds a new value.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    log.Printf("handle %d %s", e.Handle, e.Type)
//	}))
package resource
