package metrics

import "errors"

var ErrRegisterMetrics = errors.New("failed to register validation metrics")
