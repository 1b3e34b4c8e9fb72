package collabkit

import (
	"testing"

	"go.uber.org/goleak"
)

// Dispatch loops are detached; verify every test shuts its loop down.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
