// Package ui implements the interactive search screen on Bubble Tea.
//
// The screen has four stacked sections: a one-line header (name, load
// status, current selection), the query input, a window of result cards,
// and a key help footer. Each card is three rows tall: id and name, address,
// and an indicator when the query matched one of the user's items.
//
// All search state lives in a search.Controller. The model translates
// terminal events into controller transitions:
//
//   - typing updates the query; ↑/↓ (or ctrl+p/ctrl+n) and enter navigate and select
//   - pointer motion becomes container-hover and per-card enter/leave
//   - a left click selects the card under the pointer; the wheel scrolls
//   - losing terminal focus releases a keyboard-held highlight
//
// Timers the controller requests are returned to Bubble Tea as tea.Tick
// commands whose messages are fed back through Controller.Fire, so every
// transition runs on the program's event loop.
package ui
