package doc

import "errors"

// Status sentinels returned by Open; shown verbatim in the status bar.
var (
	ErrNewFile = errors.New("(New file)")
	ErrLoaded  = errors.New("(Loaded)")
)
