// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "sync"

// Reporter accumulates diagnostics during extraction. A scan reports a
// problem, repairs the sequence locally and carries on; only codes outside the
// non-fatal set stop a program. The final set is shown to the user.
type Reporter interface {
	// Report adds the given record to the set. If this method returns an error
	// then the given error is considered fatal.
	Report(Exception) Exception
	// Reported returns the set of accumulated exceptions.
	Reported() []Exception
	// ErrorCount returns the number of error-severity exceptions reported so
	// far. Warnings are not counted.
	ErrorCount() int
}

// NewReporter returns a concurrent-safe implementation of Reporter.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporterLock{
		Reporter: &reporter{
			nonFatal: nf,
		},
		lock: &sync.Mutex{},
	}
}

type reporter struct {
	reported []Exception
	nonFatal map[string]bool
	errors   int
}

func (r *reporter) Report(e Exception) Exception {
	r.reported = append(r.reported, e)
	if e.Severity() == SeverityError {
		r.errors = r.errors + 1
	}
	if r.nonFatal[e.Code()] || e.Severity() == SeverityWarning {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	return r.reported
}

func (r *reporter) ErrorCount() int {
	return r.errors
}

type reporterLock struct {
	Reporter
	lock sync.Locker
}

func (r *reporterLock) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Report(e)
}

func (r *reporterLock) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]Exception, len(r.Reporter.Reported()))
	copy(out, r.Reporter.Reported())
	return out
}

func (r *reporterLock) ErrorCount() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.ErrorCount()
}
