package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more records
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "hash table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a hash or probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a hash or probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// UnsupportedTableSize - Custom error to inform that no prime table size could be found for the requested size
type UnsupportedTableSize struct {
	msg string
}

// Error - Used to notify that a table of the requested size can not be created
func (U UnsupportedTableSize) Error() string {
	if U.msg == "" {
		return "unsupported table size"
	}
	return U.msg
}

// UnknownStrategy - Custom error to inform that a strategy name was not recognized.
// It is only ever used as the reason in a warning, the caller gets the default strategy.
type UnknownStrategy struct {
	msg string
}

// Error - Used to notify that a strategy name is unknown
func (U UnknownStrategy) Error() string {
	if U.msg == "" {
		return "unknown strategy"
	}
	return U.msg
}

// TableDestroyed - Custom error to inform that the table has been destroyed
type TableDestroyed struct {
	msg string
}

// Error - Used to notify that the table is no longer usable
func (T TableDestroyed) Error() string {
	if T.msg == "" {
		return "table destroyed"
	}
	return T.msg
}
