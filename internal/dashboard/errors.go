package dashboard

import "errors"

var ErrNoOwnedStore = errors.New("No store found for this owner.")
