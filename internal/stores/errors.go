package stores

import "errors"

var (
	ErrStoreNameExists = errors.New("A store with this name already exists.")
	ErrOwnerNotFound   = errors.New("Owner not found.")
)
