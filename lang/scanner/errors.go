package scanner

import "go/scanner"

// Error and ErrorList reuse the standard library's go/scanner diagnostic
// types: a (position, message) pair and a sortable, mergeable list of them.
// Only the Pos.Line field is meaningful for this language; Filename/Offset/
// Column are left zero.
type (
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)
