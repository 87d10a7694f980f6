// Package grid implements the spreadsheet grid engine: a sparse cell store,
// per-axis dimension indexes with viewport culling, a selection state
// machine, a single-cell edit session, a clipboard with coordinate remapping,
// table regions with sort and filter, and axis resizing.
//
// The package is pure state. It performs no terminal handling and no I/O;
// hosts (such as the sheet package) drive it synchronously from input events
// and read derived state per paint. A monotonic Version counter lets hosts
// invalidate their own caches cheaply.
package grid
