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
	"errors"

	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
)

// ErrnoOf returns the errno that err should be reported as at a POSIX
// boundary. It looks, in order, for an apis.ErrnoError (such as *Error), an
// errno.Errno, a kind.Kind (translated with errno.FromKind) and finally a
// host errno from the syscall layer. The second result is false when none is
// found.
func ErrnoOf(err error) (errno.Errno, bool) {
	if err == nil {
		return 0, false
	}
	var ee apis.ErrnoError
	if errors.As(err, &ee) && ee.ErrorErrno().Valid() {
		return ee.ErrorErrno(), true
	}
	var en errno.Errno
	if errors.As(err, &en) && en.Valid() {
		return en, true
	}
	var k kind.Kind
	if errors.As(err, &k) && k.Valid() {
		return errno.FromKind(k), true
	}
	return hostErrno(err)
}

// KindOf returns the generic kind carried by err, if any.
func KindOf(err error) (kind.Kind, bool) {
	if err == nil {
		return 0, false
	}
	var ke apis.KindError
	if errors.As(err, &ke) && ke.ErrorKind().Valid() {
		return ke.ErrorKind(), true
	}
	var k kind.Kind
	if errors.As(err, &k) && k.Valid() {
		return k, true
	}
	return 0, false
}

// From returns err as an *Error. An *Error in the chain is returned as is,
// or as a copy with Errno filled in when only its Kind was set.
// Otherwise the result wraps err with the kind or errno found by KindOf and
// ErrnoOf, and EIO when err carries neither. From(nil) is nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if en := e.effectiveErrno(); en != e.Errno {
			cp := *e
			cp.Errno = en
			return &cp
		}
		return e
	}
	if k, ok := KindOf(err); ok {
		if err == k {
			return E(k, "")
		}
		return E(k, err.Error(), WithCauseOption(err))
	}
	en, ok := ErrnoOf(err)
	if !ok {
		en = errno.EIO
	}
	if err == en {
		return FromErrno(en, "")
	}
	return FromErrno(en, err.Error(), WithCauseOption(err))
}
