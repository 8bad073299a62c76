// Package git runs the git binary inside the storage root.
//
// The sync engine never talks to git. Commands use a Client to clone the
// storage repository on init, commit and push after a push run, and pull
// before a pull run. Every invocation goes through a Runner so tests can
// substitute a scripted fake for the real binary.
package git
