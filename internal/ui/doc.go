// Package ui contains the Bubble Tea program that hosts a form session.
// The Model focuses on message orchestration, while dedicated helpers own key
// mapping, rendering, and viewport state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are matched against the key map (internal/ui/keys.go) and
//     turned into logical widget.Key tokens. The session applies the token to
//     its widget tree and returns a widget.Control; anything other than
//     widget.Continue ends the program.
//
// State ownership:
//   - The widget tree and selection state belong to the Session. The Model
//     only reads the tree to render it.
//   - Scroll position lives in internal/ui/state.Viewport and follows the
//     focused row.
package ui
