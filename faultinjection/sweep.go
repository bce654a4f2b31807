package faultinjection

const (
	// NeverFail is the counter value that disables fault injection.
	NeverFail int64 = -1
	// FailNow is the counter value MaybeFail returns when it decrements
	// past zero, i.e. the "fail now" decrement site.
	FailNow int64 = 0
)

// Sweep implements the original's RCUTILS_FAULT_INJECTION_TEST harness
// (spec.md §8 S7): it repeatedly sets the counter to 0, 1, 2, ... and
// invokes subject, until an iteration runs out of decrement sites before
// driving the counter back to NeverFail, guaranteeing every decrement site
// in subject has been made to fail exactly once across the sweep. The
// counter is reset to NeverFail before returning.
func Sweep(subject func(iteration int64)) {
	defer SetCount(NeverFail)
	for i := int64(0); ; i++ {
		SetCount(i)
		subject(i)
		if IsTestComplete() {
			return
		}
	}
}
