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

package apis

import (
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
)

// KindError is an error classified with a generic kind.
//
// Kinds answer "what category of failure is this?" without committing to a
// platform numbering. Code that only needs the category (retry policies,
// user-facing messages, metrics labels) should look for a KindError in the
// chain instead of depending on a concrete error type:
//
//	var ke apis.KindError
//	if errors.As(err, &ke) && ke.ErrorKind() == kind.WouldBlock {
//	    // back off and retry
//	}
//
// kerrors.KindOf wraps this lookup and also accepts a bare kind.Kind.
type KindError interface {
	error

	// ErrorKind returns the generic kind. It MAY return the zero Kind when the
	// error was reported with a raw errno only; callers must check Valid.
	ErrorKind() kind.Kind
}

// ErrnoError is an error that can be reported at a POSIX boundary.
//
// Adapters use ErrorErrno to pick transport statuses (see Mapper) and to put
// the raw errno on the wire. Every ErrnoError must be able to answer, so an
// implementation that was built from a kind alone derives the errno instead
// of returning zero.
//
// Contract:
//   - the result is a valid errno whenever the error carries a valid kind or
//     errno;
//   - for an error backed by a kind k and no explicit errno, the result is
//     errno.FromKind(k);
//   - the result is stable for the lifetime of the error value.
type ErrnoError interface {
	error

	// ErrorErrno returns the errno. Implementations backed by a kind return
	// errno.FromKind of that kind.
	ErrorErrno() errno.Errno
}
