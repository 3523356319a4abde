// Package browser manages the headless Chrome session a scan runs in.
//
// Each scan owns one isolated Session. The session is a scoped resource:
// acquired at scan start and force-closed on every exit path, because
// leaked browser processes are the dominant failure mode of this class
// of tool.
//
// # Snapshot Handles
//
// Navigation returns a *PageHandle, a capability for reading the page that
// was just loaded. Detectors receive the handle and never navigate through
// it; only the Session can navigate, and doing so produces a new handle.
// This makes the ordering rule (read-only detectors must finish before
// anything navigates away) visible in the types instead of being an
// implicit contract.
//
// The underlying DevTools session serializes commands, so concurrent
// read-only evaluations through one handle are safe; concurrent
// navigation is not, and the API does not offer it.
package browser
