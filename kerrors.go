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

// Package kerrors is the entry point of the kernel error vocabulary.
//
// The vocabulary itself lives in two leaf packages: kind (platform-agnostic
// categories) and errno (Linux errno values). This package adds what calling
// code needs around them:
//
//   - Result, KindResult and ErrnoResult, a success value or one failure;
//   - Raise, Fail and Ensure, which build failures and log a warning;
//   - Error, a wrapper that attaches an operation, a message and a cause to a
//     kind or errno without extending either set;
//   - ErrnoOf and KindOf, which recover the vocabulary from an error chain.
package kerrors

import (
	"fmt"

	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"github.com/rs/zerolog"
)

// Error carries context around exactly one vocabulary value.
//
// It carries:
//   - Kind: the generic category, or zero when the failure was reported with
//     a raw errno;
//   - Errno: the errno reported at a POSIX boundary (always set);
//   - Op: optional dotted operation name, e.g. "vfs.lookup";
//   - Message: human-oriented description of what went wrong;
//   - Cause: wrapped underlying error.
//
// All WithX helpers return a shallow copy, so values can be shared freely.
type Error struct {
	Kind    kind.Kind
	Errno   errno.Errno
	Op      string
	Message string
	Cause   error
}

var (
	_ apis.KindError             = (*Error)(nil)
	_ apis.ErrnoError            = (*Error)(nil)
	_ zerolog.LogObjectMarshaler = (*Error)(nil)
)

// E builds an Error for a generic kind. The errno is derived with
// errno.FromKind.
//
//	return kerrors.E(kind.NotFound, "no inode for name",
//	    kerrors.WithOpOption("vfs.lookup"),
//	)
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Kind: k, Errno: errno.FromKind(k), Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// FromErrno builds an Error for an errno that has no generic counterpart,
// or whose exact value must survive (e.g. EOPNOTSUPP).
func FromErrno(en errno.Errno, msg string, opts ...Option) *Error {
	e := &Error{Errno: en, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Name returns the kind name when a kind is set, otherwise the errno name.
func (e *Error) Name() string {
	if e.Kind.Valid() {
		return e.Kind.String()
	}
	return e.effectiveErrno().String()
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<name>: <message>
//
// or, when Op is present:
//
//	<name>:<op>: <message>
//
// An empty Message falls back to the vocabulary description.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = e.description()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s:%s: %s", e.Name(), e.Op, msg)
	}
	return fmt.Sprintf("%s: %s", e.Name(), msg)
}

func (e *Error) description() string {
	if e.Kind.Valid() {
		return e.Kind.Description()
	}
	return e.Errno.Description()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the wrapped kind or errno, or an io/fs
// sentinel that the errno matches.
func (e *Error) Is(target error) bool {
	en := e.effectiveErrno()
	switch t := target.(type) {
	case kind.Kind:
		return e.Kind.Valid() && e.Kind == t
	case errno.Errno:
		return en.Valid() && en == t
	}
	return en.Is(target)
}

// effectiveErrno is Errno, or errno.FromKind(Kind) for an Error built as a
// literal with only Kind set.
func (e *Error) effectiveErrno() errno.Errno {
	if !e.Errno.Valid() && e.Kind.Valid() {
		return errno.FromKind(e.Kind)
	}
	return e.Errno
}

// ErrorKind implements apis.KindError.
func (e *Error) ErrorKind() kind.Kind { return e.Kind }

// ErrorErrno implements apis.ErrnoError.
func (e *Error) ErrorErrno() errno.Errno { return e.effectiveErrno() }

// WithOp returns a shallow copy of e with Op set.
func (e *Error) WithOp(op string) *Error {
	cp := *e
	cp.Op = op
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCause returns a shallow copy of e with the given cause attached.
// A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	if e.Kind.Valid() {
		ev.Stringer("kind", e.Kind)
	}
	en := e.effectiveErrno()
	ev.Stringer("errno", en).Int("code", en.Code())
	if e.Op != "" {
		ev.Str("op", e.Op)
	}
	if e.Message != "" {
		ev.Str("message", e.Message)
	}
	if e.Cause != nil {
		ev.AnErr("cause", e.Cause)
	}
}
