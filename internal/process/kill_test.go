package process

// Notes:
// - Only an unused PID is tested. Real process trees are stopped by the
//   browser integration tests when a Browser is closed.
// - PID 0 would target the test's own process group.

import "testing"

func TestKillProcessGroup_UnusedPID(t *testing.T) {
	t.Parallel()

	// Must not panic for a PID nobody owns.
	KillProcessGroup(999999999)
}
