package edit

import "fmt"

// allocCount tracks the number of live CString character nodes across
// the process, mirroring the original's itl_global_alloc_count
// (toiletline.h: itl_malloc/itl_free increment and decrement a single
// static counter). insertBefore and CloneInto each increment it once
// per node created; eraseNode and Clear decrement it once per node
// released. Go's other allocations are left to the garbage collector;
// the CString node list is the one structure this package manages by
// hand, so it is the one counted here.
var allocCount int

// AllocCount returns the number of CString character nodes currently
// allocated across the process. Exit calls this once it has released
// the session's line buffer, panicking if it isn't zero, mirroring
// tl_exit's TL_ASSERT(itl_global_alloc_count == 0) (spec §4.H).
func AllocCount() int {
	return allocCount
}

// assertAllocBalance panics if any CString character nodes remain
// live. ReadLine and GetC release their Editor's line via a deferred
// Clear on every return path, so a nonzero count here means a genuine
// bookkeeping leak rather than ordinary in-progress editing state.
func assertAllocBalance() {
	if n := AllocCount(); n != 0 {
		panic(fmt.Sprintf("edit: allocation count not zero at exit: %d", n))
	}
}
