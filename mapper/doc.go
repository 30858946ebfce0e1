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

// Package mapper provides deterministic, immutable mappings from Linux errno
// values (dirpx.dev/kerrors/errno) to transport-level statuses for HTTP and
// gRPC.
//
// # Overview
//
// Kernel-adjacent components report failures as a kind or an errno. When such
// a failure leaves the process through an HTTP handler or a gRPC server, the
// errno has to become a concrete status code. A Mapper is an immutable
// snapshot, safe for concurrent reuse, and resolves HTTP and gRPC with the
// same logic. Callers can change library defaults per errno.
//
// Kinds are mapped by first translating them with errno.FromKind, so every
// kind inherits the status of its errno.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the errno;
//  2. per-errno default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal unless changed with WithFallback).
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(errno.ENOSPC, http.StatusInsufficientStorage),
//	    mapper.WithGRPCOverride(errno.EROFS, codes.PermissionDenied),
//	)
//	if err != nil {
//	    // out-of-range status, unassigned errno, ...
//	}
//
//	st := m.Status(errno.FromKind(kind.NotFound))
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how an errno was resolved,
// including which tier matched. It is intended for inspection and logging,
// not for stable machine parsing.
package mapper
