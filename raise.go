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
	"fmt"
	"sync/atomic"

	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used by Raise, Fail and Ensure. The default
// discards everything.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

// Logger returns the currently installed logger.
func Logger() *zerolog.Logger {
	return logger.Load()
}

// Raise logs a warning for e and returns e unchanged. It is the single place
// where a failure value is "thrown":
//
//	return kerrors.Raise(kind.AlreadyExists)
//	return kerrors.Raise(kind.BadAddress, "the address is 0!")
//	return kerrors.Raise(errno.EFAULT, "bad user pointer %#x", ptr)
//
// msgAndArgs is either empty, a single value, or a format string followed by
// its arguments.
func Raise[E Failure](e E, msgAndArgs ...any) E {
	ev := Logger().Warn()
	switch v := any(e).(type) {
	case kind.Kind:
		ev = ev.Stringer("kind", v)
	case errno.Errno:
		ev = ev.Stringer("errno", v)
	}
	msg := "[" + e.String() + "]"
	if m := messageFromMsgAndArgs(msgAndArgs...); m != "" {
		msg += " " + m
	}
	ev.Int("code", e.Code()).Msg(msg)
	return e
}

// Ensure returns nil when cond holds. Otherwise it raises e with the optional
// message and returns it, so it can be used as a guard clause:
//
//	if err := kerrors.Ensure(uid > 0, kind.InvalidInput, "uid %d", uid); err != nil {
//	    return err
//	}
func Ensure[E Failure](cond bool, e E, msgAndArgs ...any) error {
	if cond {
		return nil
	}
	return Raise(e, msgAndArgs...)
}

// messageFromMsgAndArgs follows testify: a lone value is the message, a
// leading string is a format for the remaining values.
func messageFromMsgAndArgs(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		msg := msgAndArgs[0]
		if msgAsStr, ok := msg.(string); ok {
			return msgAsStr
		}
		return fmt.Sprintf("%+v", msg)
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%+v", msgAndArgs)
}
