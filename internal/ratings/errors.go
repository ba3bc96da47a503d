package ratings

import "errors"

var ErrStoreNotFound = errors.New("Store not found.")
