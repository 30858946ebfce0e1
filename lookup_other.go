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

//go:build !(linux && (amd64 || arm64 || 386 || riscv64 || loong64))

package kerrors

import "dirpx.dev/kerrors/errno"

// Host errno numbering differs from the Linux table here, so syscall errors
// are not translated.
func hostErrno(error) (errno.Errno, bool) {
	return 0, false
}
