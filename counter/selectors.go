package counter

// SelectValue returns the current value.
func SelectValue(s *State) int {
	if s == nil {
		return 0
	}
	return s.Value
}

// SelectLastAction returns the label of the last applied operation.
func SelectLastAction(s *State) string {
	if s == nil {
		return LabelNone
	}
	return s.LastAction
}

// SelectIsPositive reports whether the value is strictly greater than zero.
func SelectIsPositive(s *State) bool {
	return SelectValue(s) > 0
}

// SelectIsEven reports whether the value is even. Zero is even.
func SelectIsEven(s *State) bool {
	return SelectValue(s)%2 == 0
}
