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
	"net/http"
	"sync"
	"testing"

	"dirpx.dev/kerrors/apis"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestNew_DefaultsPresent(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	check := func(e errno.Errno, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(e)
		require.Equal(t, apis.Status{HTTP: wantHTTP, GRPC: wantGRPC}, st, "Status(%s)", e.String())
	}
	check(errno.EINVAL, http.StatusBadRequest, codes.InvalidArgument)
	check(errno.ENOENT, http.StatusNotFound, codes.NotFound)
	check(errno.EEXIST, http.StatusConflict, codes.AlreadyExists)
	check(errno.EACCES, http.StatusForbidden, codes.PermissionDenied)
	check(errno.EAGAIN, http.StatusServiceUnavailable, codes.Unavailable)
	check(errno.ETIMEDOUT, http.StatusGatewayTimeout, codes.DeadlineExceeded)
	check(errno.ENOSYS, http.StatusNotImplemented, codes.Unimplemented)
	check(errno.ENOSPC, http.StatusInsufficientStorage, codes.ResourceExhausted)
}

func TestDefaults_CoverEveryKind(t *testing.T) {
	for _, k := range kind.All() {
		e := errno.FromKind(k)
		_, okHTTP := defaultHTTP[e]
		_, okGRPC := defaultGRPC[e]
		require.True(t, okHTTP, "no HTTP default for %s (%s)", e.String(), k.String())
		require.True(t, okGRPC, "no gRPC default for %s (%s)", e.String(), k.String())
	}
}

func TestDefaults_SameDomain(t *testing.T) {
	for e := range defaultHTTP {
		_, ok := defaultGRPC[e]
		require.True(t, ok, "%s has an HTTP default but no gRPC default", e.String())
	}
	require.Len(t, defaultGRPC, len(defaultHTTP))
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(errno.EAGAIN, http.StatusTooManyRequests),
		WithHTTPOverride(errno.EAGAIN, http.StatusTeapot),
		WithGRPCDefault(errno.EAGAIN, codes.ResourceExhausted),
		WithGRPCOverride(errno.EAGAIN, codes.Aborted),
	)
	require.NoError(t, err)

	st := m.Status(errno.EAGAIN)
	require.Equal(t, http.StatusTeapot, st.HTTP, "override must win")
	require.Equal(t, codes.Aborted, st.GRPC, "override must win")
}

func TestUserDefaultReplacesLibraryDefault(t *testing.T) {
	m, err := New(WithHTTPDefault(errno.EAGAIN, http.StatusTooManyRequests))
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, m.HTTPStatus(errno.EAGAIN))
	require.Equal(t, codes.Unavailable, m.GRPCStatus(errno.EAGAIN))
}

func TestFallback(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	require.Equal(t, apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal}, m.Status(errno.ECHILD))

	m, err = New(WithFallback(http.StatusBadGateway, codes.Unknown))
	require.NoError(t, err)
	require.Equal(t, apis.Status{HTTP: http.StatusBadGateway, GRPC: codes.Unknown}, m.Status(errno.ECHILD))

	// invalid errnos also land on the fallback
	require.Equal(t, http.StatusBadGateway, m.HTTPStatus(errno.Errno(41)))
}

func TestWithoutLibraryDefaults(t *testing.T) {
	m, err := New(
		WithoutLibraryDefaults(),
		WithHTTPDefault(errno.ENOENT, http.StatusGone),
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusGone, m.HTTPStatus(errno.ENOENT))
	require.Equal(t, codes.Internal, m.GRPCStatus(errno.ENOENT))
	require.Equal(t, http.StatusInternalServerError, m.HTTPStatus(errno.EINVAL))
}

func TestNew_RejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"unknown errno http", WithHTTPOverride(errno.Errno(58), 400)},
		{"unknown errno grpc", WithGRPCDefault(errno.Errno(0), codes.Internal)},
		{"success http status", WithHTTPDefault(errno.ENOENT, http.StatusOK)},
		{"out of range http status", WithHTTPOverride(errno.ENOENT, 600)},
		{"ok grpc code", WithGRPCOverride(errno.ENOENT, codes.OK)},
		{"unknown grpc code", WithGRPCOverride(errno.ENOENT, codes.Code(42))},
		{"bad fallback", WithFallback(http.StatusNoContent, codes.Internal)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.opt)
			require.Error(t, err)
			require.Nil(t, m)
		})
	}

	_, err := New(WithHTTPOverride(errno.Errno(58), 400))
	require.ErrorIs(t, err, errno.ErrUnrecognized)
}

func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { MustNew(WithHTTPOverride(errno.ENOENT, 200)) })
	require.NotPanics(t, func() { MustNew() })
}

func TestOptionsDoNotLeakBetweenMappers(t *testing.T) {
	m1, err := New(WithHTTPDefault(errno.ENOENT, http.StatusGone))
	require.NoError(t, err)
	m2, err := New()
	require.NoError(t, err)
	require.Equal(t, http.StatusGone, m1.HTTPStatus(errno.ENOENT))
	require.Equal(t, http.StatusNotFound, m2.HTTPStatus(errno.ENOENT))
	require.Equal(t, http.StatusNotFound, defaultHTTP[errno.ENOENT])
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithHTTPOverride(errno.EAGAIN, http.StatusTooManyRequests))
	require.NoError(t, err)

	exp := m.Explain(errno.EAGAIN)
	require.Contains(t, exp, "errno=EAGAIN(11)")
	require.Contains(t, exp, "http: source=override -> 429")
	require.Contains(t, exp, "grpc: source=default -> UNAVAILABLE(14)")

	exp = m.Explain(errno.ECHILD)
	require.Contains(t, exp, "http: source=fallback -> 500")
	require.Contains(t, exp, "grpc: source=fallback -> INTERNAL(13)")
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride(errno.ECANCELED, 499))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(errno.EAGAIN)
				_ = m.Status(errno.ECANCELED)
				_ = m.Explain(errno.ECHILD)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(errno.EINVAL)
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m, _ := New(
		WithHTTPOverride(errno.EAGAIN, http.StatusTooManyRequests),
		WithGRPCOverride(errno.EAGAIN, codes.ResourceExhausted),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(errno.EAGAIN)
	}
}

func BenchmarkMapperStatus_Fallback(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(errno.ECHILD)
	}
}

func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
