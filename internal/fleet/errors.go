package fleet

import "errors"

// ErrInvalidTaxonomy is returned when the catalog cannot yield a fleet.
var ErrInvalidTaxonomy = errors.New("fleet: invalid taxonomy")
