package vision

import "errors"

var errInferenceStatus = errors.New("inference service returned non-OK status")
