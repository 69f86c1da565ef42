// Package message defines the value types shared by every layer of the
// relay: message names and the argument lists that accompany a fire.
//
// Names are flat strings compared by value. Unlike hierarchical topic
// systems there are no segments, wildcards, or pattern matching; a
// subscription for "ping" observes exactly the fires of "ping".
package message
