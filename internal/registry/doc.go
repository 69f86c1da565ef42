// Package registry routes names to publisher handles, tolerating reads
// before the publisher exists.
//
// Get lazily materializes a trigger.Placeholder for an unclaimed name, so
// consumers can subscribe or wait immediately. When the real publisher
// claims the name via Set, the previous occupant's buffered state
// forwards onto the new handle: a placeholder's buffers replay, and on
// name reuse the displaced handle's buffers replay the same way before
// it seals.
//
// Two flavors share the slot logic: Scoped registries live with one
// owning consumer, Global registries are explicitly constructed values
// shared across the system.
package registry
