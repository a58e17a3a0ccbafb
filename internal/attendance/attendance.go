package attendance

import "errors"

// ErrEvidenceRequired rejects a check-in without a photo. Capture is mandatory
// for presensi; there is no override.
var ErrEvidenceRequired = errors.New("attendance: evidence photo required")
