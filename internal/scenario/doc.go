// Package scenario loads and replays YAML-scripted walkthroughs of the
// deferred-binding protocol: subscribe and wait on names that are not
// linked yet, link publishers, fire messages, and observe the buffered
// requests resolve. Used by the herald command for demos and smoke runs.
package scenario
