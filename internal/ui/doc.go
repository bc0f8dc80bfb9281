// Package ui contains the Bubble Tea program that powers the emoji picker
// panel. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own search, rendering, navigation,
// selection, and the settings form.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the settings form is open, key presses go to the form first;
//     everything else (async command results, watcher events, debounce ticks)
//     is routed through a typed handler registry so each tea.Msg is handled
//     by a focused function.
//   - Search helpers (internal/ui/search.go) debounce keystrokes and guard
//     against stale results with a sequence number plus the query text the
//     result was computed for. Render helpers (internal/ui/render.go) fill
//     the grid in batches so a large result set never blocks the event loop.
//   - Navigation helpers (internal/ui/navigation.go) move focus between the
//     search field and the grid, inferring the column count from the rendered
//     cell geometry rather than trusting a cached layout.
//
// State ownership:
//   - Query text and cursor live in internal/ui/state.Query; the grid model
//     and its rendered prefix live in internal/ui/state.Grid; focus and the
//     remembered grid position live in internal/ui/state.FocusRing.
//   - Settings and usage-count snapshots are provided by internal/state and
//     kept in sync by the dispatcher, so external edits to the persisted
//     files show up without restarting the panel.
//   - Gateway calls run through the internal/ui/command bus, letting actions
//     execute asynchronously and land back in Update as typed messages.
//
// Backend interactions:
//   - A backend.Watcher streams file-change events; Update waits for those
//     events and hands them to applyBackendEvent, which reloads the persisted
//     stores and re-runs the current query when the data underneath changed.
//   - Selection runs hide, output, and usage recording as one asynchronous
//     pipeline; each step's failure is reported without stopping the rest.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (debouncing, batching, focus movement, capture) without
// needing to reason about the entire TUI at once.
package ui
