// Package ignore implements the ignore ledger: the set of relative paths the
// user declined to materialize on this machine.
//
// The ledger lives at `.dotrignore` in the storage root, one path per line.
// It is local to the machine (the storage repository's .gitignore excludes
// it) and is only ever appended to. Membership is exact: ignoring
// `a/b.txt` says nothing about `a/b.txt.bak`.
package ignore
