package attmaptest

import "fmt"

// recorder is a TestingT that records failures instead of halting.
type recorder struct {
	failed bool
	halted bool
	msg    string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
}

func (r *recorder) FailNow() {
	r.halted = true
}
