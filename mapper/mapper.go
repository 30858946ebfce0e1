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
	"strings"

	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/errno"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Validate every rule: known errno, error-class HTTP status, non-OK gRPC code.
//  4. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Default is the mapper built from library defaults only.
var Default = MustNew()

// mapper combines per-errno defaults, per-errno exact overrides and global
// fallbacks into a single immutable snapshot.
//
// All maps are private copies made by New; nothing outside the snapshot can
// change them afterwards, so lookups are plain map reads and safe for
// concurrent use without locking.
type mapper struct {
	// httpDefault holds the per-errno HTTP defaults: the library table
	// (unless WithoutLibraryDefaults was given) adjusted by WithHTTPDefault.
	httpDefault map[errno.Errno]int

	// grpcDefault holds the per-errno gRPC defaults, built the same way as
	// httpDefault.
	grpcDefault map[errno.Errno]codes.Code

	// httpOverride holds exact per-errno HTTP overrides. An entry here wins
	// over any default for the same errno.
	httpOverride map[errno.Errno]int

	// grpcOverride holds exact per-errno gRPC overrides.
	grpcOverride map[errno.Errno]codes.Code

	// fallbackHTTP is used when an errno has neither an override nor a
	// default, including invalid errnos. Always a 4xx or 5xx status.
	fallbackHTTP int

	// fallbackGRPC is the gRPC counterpart of fallbackHTTP. Never codes.OK.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given errno.
//
// Resolution order (highest to lowest):
//  1. exact override;
//  2. default (library or user overridden);
//  3. fallback.
func (m *mapper) HTTPStatus(e errno.Errno) int {
	_, v := m.resolveHTTP(e)
	return v
}

// GRPCStatus resolves a gRPC status for the given errno, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(e errno.Errno) codes.Code {
	_, v := m.resolveGRPC(e)
	return v
}

// Status resolves both HTTP and gRPC using the same input.
func (m *mapper) Status(e errno.Errno) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(e),
		GRPC: m.GRPCStatus(e),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for an errno.
//
// Example output:
//
//	errno=ENOENT(2)
//	http: source=default -> 404
//	grpc: source=default -> NOTFOUND(5)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(e errno.Errno) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "errno=%s(%d)\n", e.String(), e.Code())

	src, h := m.resolveHTTP(e)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, h)

	src, g := m.resolveGRPC(e)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, strings.ToUpper(g.String()), uint32(g))

	return b.String()
}

// resolveHTTP walks the tiers and reports which one answered. Explain prints
// the source; HTTPStatus drops it.
func (m *mapper) resolveHTTP(e errno.Errno) (source string, v int) {
	// 1) exact override
	if v, ok := m.httpOverride[e]; ok {
		return "override", v
	}
	// 2) per-errno default
	if v, ok := m.httpDefault[e]; ok {
		return "default", v
	}
	// 3) global fallback
	return "fallback", m.fallbackHTTP
}

// resolveGRPC mirrors resolveHTTP for gRPC codes.
func (m *mapper) resolveGRPC(e errno.Errno) (source string, v codes.Code) {
	if v, ok := m.grpcOverride[e]; ok {
		return "override", v
	}
	if v, ok := m.grpcDefault[e]; ok {
		return "default", v
	}
	return "fallback", m.fallbackGRPC
}
