// Package sync implements the bidirectional sync engine.
//
// For every tracked file the engine compares the live copy under the base
// directory with the storage copy under the storage root and decides what to
// do, one file at a time in registry order:
//
//	SyncFromLive (push):  live missing   -> untracked (storage copy removed)
//	                      hash unchanged -> unchanged (no writes)
//	                      otherwise      -> updated   (live copied, hash recorded)
//
//	SyncToLive (pull):    storage missing          -> consistency error
//	                      live present, same hash  -> unchanged
//	                      live present, different  -> materialized (storage wins)
//	                      live missing, in ledger  -> ignored
//	                      live missing, declined   -> newly-ignored
//	                      live missing, accepted   -> materialized
//
// Decisions about missing live files are delegated to a MissingFilePolicy so
// the engine never blocks on a terminal by itself. The hash recorded in the
// registry only moves in the push direction: after a pull the storage copy is
// authoritative and already matches it.
package sync
