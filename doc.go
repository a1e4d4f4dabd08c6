// Package listcrdt is a comparative reference library of list-CRDT
// integration algorithms for collaboratively edited sequences.
//
// Replicas independently produce insertion and deletion operations against
// a shared ordered list. The library deterministically merges those
// operations so that every replica which has observed the same set of
// operations converges to the same visible sequence, regardless of the
// order in which they arrived — the strong eventual consistency (SEC)
// guarantee described in the package's design notes.
//
// Six placement rules are implemented as seven interchangeable Algorithm
// values: YjsActual, YjsMod, Automerge, Sync9, DoubleRGA1, DoubleRGA2, and
// DoubleRGAEquivalent (a re-expression of YjsMod). They share one
// document store, one version-vector model, and one merge driver; only
// the rule that decides where a new insertion lands differs between them.
//
// The package is single-threaded and purely in-memory: no operation
// suspends, and a Document must not be shared across goroutines without
// external synchronization. There is no wire format, no persistence, and
// no CLI here — those are left to callers.
package listcrdt
