package vote

// Vote is the capability shared by every ballot representation.
// Winner rules stay on the concrete types because the two ballot shapes
// compute first preferences differently (raw counts vs. weighted rank-0
// totals).
type Vote interface {
	// NumCandidates returns the number of candidates.
	NumCandidates() int

	// NumVoters returns the number of voters.
	NumVoters() int64
}
