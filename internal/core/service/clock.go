package service

import "time"

// now is swapped in tests that need a fixed clock.
var now = func() time.Time { return time.Now().UTC() }
