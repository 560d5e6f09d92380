// Package session owns the state of one interactive remote session.
//
// A Loop merges two event streams, keypresses and newly discovered devices,
// in a single goroutine. Keys map through a KeyMap to remote actions (sent
// through a Dispatcher to the selected device), device selection changes,
// a view toggle, or quit. After each event that changes what is shown, the
// loop hands an immutable Snapshot to a Renderer.
//
// The loop never waits on the network: discovery results arrive already
// resolved and commands are fire-and-forget.
package session
