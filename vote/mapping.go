package vote

// MaxEntries returns the keys tied at the maximum value, sorted
// ascending, together with that maximum. It fails with a
// ValidationError on an empty mapping.
func MaxEntries(m map[string]int64) ([]string, int64, error) {
	if len(m) == 0 {
		return nil, 0, NewValidationError("mapping", "cannot find the maximum of an empty mapping")
	}
	first := true
	var maxValue int64
	for _, v := range m {
		if first || v > maxValue {
			maxValue = v
			first = false
		}
	}
	tied := make([]string, 0, 1)
	for _, k := range sortedKeys(m) {
		if m[k] == maxValue {
			tied = append(tied, k)
		}
	}
	return tied, maxValue, nil
}
