/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package kerrors

import (
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
)

// Failure is the set of values a Result can fail with.
type Failure interface {
	kind.Kind | errno.Errno
	error
	Code() int
	String() string
	Description() string
}

// Unit is the success value of results that carry no data.
type Unit = struct{}

// Result is either a success value of type T or a failure of type E.
//
// The zero Result is a success holding the zero T.
type Result[T any, E Failure] struct {
	value  T
	err    E
	failed bool
}

// KindResult is a Result that fails with a generic kind.
type KindResult[T any] = Result[T, kind.Kind]

// ErrnoResult is a Result that fails with a Linux errno.
type ErrnoResult[T any] = Result[T, errno.Errno]

// Ok returns a successful result holding v.
func Ok[T any, E Failure](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Fail returns a failed result holding e. Like Raise, it logs a warning
// carrying e and the optional message.
//
//	return kerrors.Fail[uintptr](kind.BadAddress, "the address is %#x", addr)
func Fail[T any, E Failure](e E, msgAndArgs ...any) Result[T, E] {
	return Result[T, E]{err: Raise(e, msgAndArgs...), failed: true}
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool { return !r.failed }

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the failure and true, or the zero E and false.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, r.failed
}

// Or returns the success value, or def when r failed.
func (r Result[T, E]) Or(def T) T {
	if r.failed {
		return def
	}
	return r.value
}

// Err returns the failure as an error, or nil on success.
func (r Result[T, E]) Err() error {
	if !r.failed {
		return nil
	}
	return r.err
}

// Get unpacks r into the usual (value, error) pair.
func (r Result[T, E]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
