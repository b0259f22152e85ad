package domain

import "errors"

// ErrNoBooks is returned when the corpus root holds no canonical book folder.
var ErrNoBooks = errors.New("no book folders found at corpus root")
