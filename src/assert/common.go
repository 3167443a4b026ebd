// Package assert provides the narrow generics-based test helpers this
// module's tests build on: Equal, NilErr and NotNilErr against the
// minimal interfaces *testing.T already satisfies.
package assert

import "fmt"

// TestingErrf is satisfied by testing.T, testing.TB and similar types
// that can report a non-fatal test failure.
type TestingErrf interface {
	Errorf(format string, args ...any)
	Helper()
}

// TestingFatalf is satisfied by testing.T, testing.TB and similar
// types that can report a fatal test failure.
type TestingFatalf interface {
	Fatalf(format string, args ...any)
	Helper()
}

func fromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}

	fmtStr, ok := msgAndArgs[0].(string)
	if !ok {
		panic("The first argument in msgAndArgs must be a string format value.")
	}

	return fmt.Sprintf(" ("+fmtStr+")", msgAndArgs[1:]...)
}
