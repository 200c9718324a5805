package host

// Helpers that centralize return-code interpretation. The convention: a
// non-negative code is a byte count or scalar value, a negative code is an
// error. Zero is a valid "no data" success for variable-length results and
// must never be conflated with CodeFieldNotFound.

// ResultLen interprets rc as a byte count. Returns the count, or the mapped
// error for negative codes.
func ResultLen(rc int32) (int, error) {
	if rc < 0 {
		return 0, ErrFromCode(rc)
	}
	return int(rc), nil
}

// ResultOK interprets rc as a status-only result (non-negative means done).
func ResultOK(rc int32) error {
	if rc < 0 {
		return ErrFromCode(rc)
	}
	return nil
}

// ResultLenOptional is ResultLen with field-not-found treated as absence
// rather than failure. The second return reports presence.
func ResultLenOptional(rc int32) (int, bool, error) {
	if rc == CodeFieldNotFound {
		return 0, false, nil
	}
	if rc < 0 {
		return 0, false, ErrFromCode(rc)
	}
	return int(rc), true, nil
}

// ResultExact requires rc to equal the exact byte count the caller expected.
// A non-negative mismatch is an internal error: the host wrote a different
// number of bytes than the field type allows.
func ResultExact(rc int32, want int) error {
	if rc < 0 {
		return ErrFromCode(rc)
	}
	if int(rc) != want {
		return ErrInternal
	}
	return nil
}

// ResultExactOptional is ResultExact with field-not-found treated as absence.
// A non-negative byte-count mismatch reports CodePointerOutOfBounds, matching
// the host's diagnostic convention for short reads.
func ResultExactOptional(rc int32, want int) (bool, error) {
	if rc == CodeFieldNotFound {
		return false, nil
	}
	if rc < 0 {
		return false, ErrFromCode(rc)
	}
	if int(rc) != want {
		return false, ErrPointerOutOfBounds
	}
	return true, nil
}
