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

package errno

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// Errno is a Linux errno value.
//
// The numeric value of every constant equals the kernel's errno for that
// name, so Code can be handed across a system-call boundary or wire protocol
// that expects standard errno semantics. Errno implements error.
type Errno int32

var (
	// ErrUnrecognized is returned when an integer or a name does not denote
	// a known errno. Unknown input is never coerced to a default variant.
	ErrUnrecognized = errors.New("errno: unrecognized code")
)

var (
	_ error                    = Errno(0)
	_ fmt.Stringer             = Errno(0)
	_ encoding.TextMarshaler   = (*Errno)(nil)
	_ encoding.TextUnmarshaler = (*Errno)(nil)
)

var byName = func() map[string]Errno {
	m := make(map[string]Errno, maxErrno+3)
	for e := Errno(1); e <= maxErrno; e++ {
		if table[e].name != "" {
			m[table[e].name] = e
		}
	}
	m["EWOULDBLOCK"] = EWOULDBLOCK
	m["EDEADLOCK"] = EDEADLOCK
	m["ENOTSUP"] = ENOTSUP
	return m
}()

// All returns every assigned errno in ascending numeric order.
func All() []Errno {
	out := make([]Errno, 0, maxErrno)
	for e := Errno(1); e <= maxErrno; e++ {
		if table[e].name != "" {
			out = append(out, e)
		}
	}
	return out
}

// FromCode decodes a raw errno integer. Zero, negative, unassigned and
// out-of-range values fail with ErrUnrecognized.
func FromCode(code int) (Errno, error) {
	if code <= 0 || code > maxErrno || table[code].name == "" {
		return 0, fmt.Errorf("%w: %d", ErrUnrecognized, code)
	}
	return Errno(code), nil
}

// Parse looks an errno up by its symbolic name ("ENOENT", "enoent"). The
// aliases EWOULDBLOCK, EDEADLOCK and ENOTSUP are accepted.
func Parse(s string) (Errno, error) {
	if e, ok := byName[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognized, s)
}

// MustParse is like Parse but panics on unknown names.
func MustParse(s string) Errno {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Valid reports whether e is an assigned errno.
func (e Errno) Valid() bool {
	return e >= 1 && e <= maxErrno && table[e].name != ""
}

// Code returns the errno integer.
func (e Errno) Code() int {
	return int(e)
}

// Negative returns -e, the form in which raw system calls report failure.
func (e Errno) Negative() int {
	return -int(e)
}

// String returns the symbolic name, e.g. "ENOENT".
func (e Errno) String() string {
	if !e.Valid() {
		return "Errno(" + strconv.Itoa(int(e)) + ")"
	}
	return table[e].name
}

// Description returns the strerror text for e.
func (e Errno) Description() string {
	if !e.Valid() {
		return "Unknown error " + strconv.Itoa(int(e))
	}
	return table[e].desc
}

// Error implements the error interface.
func (e Errno) Error() string {
	return e.Description()
}

// Is matches the portable io/fs sentinels the same way syscall.Errno does.
func (e Errno) Is(target error) bool {
	switch target {
	case fs.ErrPermission:
		return e == EACCES || e == EPERM
	case fs.ErrExist:
		return e == EEXIST || e == ENOTEMPTY
	case fs.ErrNotExist:
		return e == ENOENT
	case errors.ErrUnsupported:
		return e == ENOSYS || e == EOPNOTSUPP
	}
	return false
}

// Temporary reports whether the condition is expected to clear on its own.
func (e Errno) Temporary() bool {
	return e == EINTR || e == EMFILE || e == ENFILE || e.Timeout()
}

// Timeout reports whether e is a timeout-like condition.
func (e Errno) Timeout() bool {
	return e == EAGAIN || e == ETIMEDOUT
}

// MarshalText implements encoding.TextMarshaler using the symbolic name.
func (e Errno) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognized, int32(e))
	}
	return []byte(table[e].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Errno) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
