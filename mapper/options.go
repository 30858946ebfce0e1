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

package mapper

import (
	"dirpx.dev/kerrors/errno"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given errno.
func WithHTTPDefault(e errno.Errno, http int) Option {
	return func(b *builder) { b.httpDefaults[e] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given errno.
func WithGRPCDefault(e errno.Errno, grpc codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[e] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given errno.
// Overrides take precedence over defaults.
func WithHTTPOverride(e errno.Errno, http int) Option {
	return func(b *builder) { b.httpOverride[e] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given errno.
func WithGRPCOverride(e errno.Errno, grpc codes.Code) Option {
	return func(b *builder) { b.grpcOverride[e] = grpc }
}

// WithFallback replaces the statuses used for errnos that have neither an
// override nor a default.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}

// WithoutLibraryDefaults starts from an empty default table. Only overrides,
// user defaults and the fallback apply.
func WithoutLibraryDefaults() Option {
	return func(b *builder) {
		clear(b.httpDefaults)
		clear(b.grpcDefaults)
	}
}
