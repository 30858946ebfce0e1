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

//go:build linux && (amd64 || arm64 || 386 || riscv64 || loong64)

package kerrors

import (
	"errors"

	"dirpx.dev/kerrors/errno"
	"golang.org/x/sys/unix"
)

// hostErrno recovers an errno from a syscall error, e.g. the *fs.PathError
// returned by os.Open.
func hostErrno(err error) (errno.Errno, bool) {
	var se unix.Errno
	if !errors.As(err, &se) {
		return 0, false
	}
	e, ferr := errno.FromSys(se)
	if ferr != nil {
		return 0, false
	}
	return e, true
}
