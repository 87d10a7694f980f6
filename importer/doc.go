// Package importer converts external file formats into grid cell batches.
// Adapters read a source, produce a grid.CellBatch plus optional table
// region metadata, and leave all parsing of cell text to the grid's own
// inference. The grid core never touches file formats directly.
package importer
