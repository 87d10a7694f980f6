// Package sheet provides a Bubble Tea spreadsheet component backed by the
// grid package.
//
// The package is responsible for input handling (keyboard navigation, edit
// sessions, mouse drag selection and boundary resizing), viewport-culled
// rendering of the visible cell slice, the filter popup, and host
// integration (render snapshots, change events, an OS clipboard bridge).
// Scroll events only mutate offsets; the visible range is recomputed at most
// once per paint through the layout cache.
package sheet
