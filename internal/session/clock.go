package session

import "time"

// nowFunc is replaceable in tests that need a fixed clock for token expiry.
var nowFunc = time.Now
