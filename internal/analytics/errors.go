package analytics

import "errors"

// ErrEmptyDataset is returned when there is nothing to aggregate: no rows at
// all, or rows whose counts are all zero.
var ErrEmptyDataset = errors.New("no transaction data available")
