package genetics

// A test only moves forward, one step at a time.
var testTransitions = map[TestStatus]TestStatus{
	TestRequested:      TestKitSent,
	TestKitSent:        TestSampleReceived,
	TestSampleReceived: TestAnalyzing,
	TestAnalyzing:      TestComplete,
}

func (s TestStatus) Valid() bool {
	switch s {
	case TestRequested, TestKitSent, TestSampleReceived, TestAnalyzing, TestComplete:
		return true
	}
	return false
}

// CanTransition reports whether a test in status from may move to to.
func CanTransition(from, to TestStatus) bool {
	next, ok := testTransitions[from]
	return ok && next == to
}
