package analyzer

import "errors"

// raw engine output that could not be interpreted as JSON. a totally failed
// generation must surface to the caller rather than fabricate a "successful"
// record from defaults.
var ErrUnparseableResponse = errors.New("empty or unparseable AI response")
