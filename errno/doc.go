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

// Package errno defines the closed set of Linux errno values.
//
// Every Errno constant carries the exact numeric value the Linux kernel uses
// on the asm-generic architectures (amd64, arm64, 386, riscv64, loong64), a
// symbolic name (String) and the glibc strerror text (Description).
//
// Raw integers are decoded with FromCode, which rejects anything that is not
// an assigned errno instead of mapping it to a catch-all:
//
//	e, err := errno.FromCode(rc)
//	if errors.Is(err, errno.ErrUnrecognized) {
//	    // the peer sent something we do not understand
//	}
//
// FromKind bridges the platform-agnostic vocabulary of package kind into this
// one. It is total over the defined kinds and fixed at build time.
package errno
