package backfill

import "errors"

var ErrAlreadyRunning = errors.New("rate backfill already running")
