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
	"fmt"
	"net/http"

	"dirpx.dev/kerrors/errno"
	"google.golang.org/grpc/codes"
)

// maxGRPCCode is the highest canonical gRPC status code (Unauthenticated).
const maxGRPCCode = codes.Unauthenticated

type builder struct {
	// httpDefaults holds per-errno HTTP defaults, seeded from defaultHTTP.
	httpDefaults map[errno.Errno]int
	// grpcDefaults holds per-errno gRPC defaults, seeded from defaultGRPC.
	grpcDefaults map[errno.Errno]codes.Code

	// httpOverride holds exact per-errno HTTP overrides (higher than defaults).
	httpOverride map[errno.Errno]int
	// grpcOverride holds exact per-errno gRPC overrides.
	grpcOverride map[errno.Errno]codes.Code

	// global fallbacks used when an errno has no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[errno.Errno]int, len(defaultHTTP)),
		grpcDefaults: make(map[errno.Errno]codes.Code, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[errno.Errno]int),
		grpcOverride: make(map[errno.Errno]codes.Code),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}
	return b
}

// validate checks every rule the options produced.
func (b *builder) validate() error {
	if err := validateHTTP(b.fallbackHTTP); err != nil {
		return fmt.Errorf("mapper: fallback: %w", err)
	}
	if err := validateGRPC(b.fallbackGRPC); err != nil {
		return fmt.Errorf("mapper: fallback: %w", err)
	}
	for _, m := range []map[errno.Errno]int{b.httpDefaults, b.httpOverride} {
		for e, v := range m {
			if !e.Valid() {
				return fmt.Errorf("mapper: HTTP rule for %s: %w", e.String(), errno.ErrUnrecognized)
			}
			if err := validateHTTP(v); err != nil {
				return fmt.Errorf("mapper: HTTP rule for %s: %w", e.String(), err)
			}
		}
	}
	for _, m := range []map[errno.Errno]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for e, v := range m {
			if !e.Valid() {
				return fmt.Errorf("mapper: gRPC rule for %s: %w", e.String(), errno.ErrUnrecognized)
			}
			if err := validateGRPC(v); err != nil {
				return fmt.Errorf("mapper: gRPC rule for %s: %w", e.String(), err)
			}
		}
	}
	return nil
}

func validateHTTP(v int) error {
	if v < 400 || v > 599 {
		return fmt.Errorf("HTTP status %d is not an error status", v)
	}
	return nil
}

func validateGRPC(v codes.Code) error {
	if v == codes.OK || v > maxGRPCCode {
		return fmt.Errorf("gRPC code %d is not an error code", uint32(v))
	}
	return nil
}

// freeze copies src so the mapper never observes later builder changes.
func freeze[V any](src map[errno.Errno]V) map[errno.Errno]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[errno.Errno]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
