package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidArgument: empty sample set, negative order or mismatched lengths
	ErrorInvalidArgument = errors.New("invalid argument")

	// ErrorNumericAnomaly: a computed value is NaN or Inf
	ErrorNumericAnomaly = errors.New("numeric anomaly")
)
