package sheetcalc

import "errors"

// ErrInvalidPosition is returned by SetCell/GetCell/ClearCell when the
// given Position falls outside the addressable sheet.
var ErrInvalidPosition = errors.New("sheetcalc: invalid position")

// ErrCircularDependency is returned by SetCell when accepting the write
// would introduce a cycle in the dependency graph.
var ErrCircularDependency = errors.New("sheetcalc: circular dependency")
