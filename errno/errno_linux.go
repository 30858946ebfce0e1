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

package errno

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Sys returns e as the host's unix.Errno.
func (e Errno) Sys() unix.Errno {
	return unix.Errno(e)
}

// FromSys converts a host errno. Values outside the assigned table fail with
// ErrUnrecognized.
func FromSys(se unix.Errno) (Errno, error) {
	e, err := FromCode(int(se))
	if err != nil {
		return 0, fmt.Errorf("errno: host errno %d: %w", int(se), err)
	}
	return e, nil
}
