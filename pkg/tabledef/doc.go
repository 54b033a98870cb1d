// Package tabledef loads transition tables for string-typed machines from
// YAML or JSON documents.
//
//	name: loader
//	initial: idle
//	transitions:
//	  - {from: idle, event: start, to: loading}
//	  - {from: loading, event: ok, to: done}
//	  - {from: loading, event: fail, to: failed}
//
// Rows are applied in document order, so a repeated (from, event) pair
// overwrites the earlier row. Duplicates lists such rows for tooling.
package tabledef
