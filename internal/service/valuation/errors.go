package valuation

import "errors"

// ErrNotLoaded - цены ещё ни разу не были получены
var ErrNotLoaded = errors.New("prices not loaded yet")
