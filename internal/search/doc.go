// Package search implements incremental user search: the multi-field filter,
// the match highlighter, and the interaction controller that owns query,
// result, and highlight state.
//
// # Filter
//
// Filter returns the users matching a query, in directory order. A user
// matches when its id, name, any item, address, or pincode contains the
// query. Name, items, and address compare case-insensitively; id and pincode
// compare exactly. The empty query matches nothing.
//
// # Highlight
//
// Highlight splits text into literal and matched spans. The query is matched
// as a literal substring, so characters such as "(" or "*" carry no special
// meaning. Concatenating the spans always reproduces the input.
//
// # Controller
//
// Controller is a finite-state object mutated only through named transitions
// (Type, MoveDown, MoveUp, Enter, PointerEnter, PointerLeave, Select, ...).
// It never starts goroutines. Delayed work (the filter debounce and the hover
// debounce) is requested from a Scheduler as a Timer and delivered back with
// Fire. Each timer kind has a single slot: arming it invalidates any earlier
// request of that kind, and Close invalidates everything.
//
//	ctrl := search.NewController(users, search.Options{Scheduler: sched})
//	ctrl.Type("pen")           // schedules a filter Timer
//	ctrl.Fire(timer)           // runs the filter when the timer elapses
//	ctrl.MoveDown()            // highlights the first match
//	ctrl.Enter()               // selects it
package search
