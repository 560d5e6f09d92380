// Package tui is the terminal front end of the interactive remote.
//
// It is a Bubble Tea program with two jobs. It forwards every keypress to
// the session loop, and it draws whatever session.Snapshot the loop last
// sent. It holds no session state of its own beyond layout and the brief
// flash of the last pressed key.
//
// # Layout
//
//	┌──────────────────────────────────────────────┐
//	│ TVREMOTE v1.0.0          github.com/muurk/…  │
//	├──────────────────────────────────────────────┤
//	│  Living Room │ Bedroom                       │
//	│  Living Room (192.168.1.20)                  │
//	│                                              │
//	│         [p power]                            │
//	│    [⌫ back]     [h home]                     │
//	│              …                               │
//	├──────────────────────────────────────────────┤
//	│ tab next tv • i details • p power • q quit   │
//	└──────────────────────────────────────────────┘
//
// Sink adapts a running *tea.Program to session.Renderer.
package tui
