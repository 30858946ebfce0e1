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

package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/errno"
	"dirpx.dev/kerrors/kind"
	"dirpx.dev/kerrors/mapper"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) *spb.Status {
	t.Helper()
	var st spb.Status
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &st))
	return &st
}

func TestWrite_KindError(t *testing.T) {
	w := Writer{Mapper: mapper.Default}
	rec := httptest.NewRecorder()

	w.Write(rec, kerrors.E(kind.NotFound, "no such volume", kerrors.WithOpOption("vol.get")), Meta{RequestID: "r-42"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "ENOENT", rec.Header().Get("X-Errno"))
	require.Empty(t, rec.Header().Get("Retry-After"))

	st := decode(t, rec)
	require.Equal(t, int32(codes.NotFound), st.GetCode())
	require.Equal(t, "no such volume", st.GetMessage())
	require.Len(t, st.GetDetails(), 1)

	var ei errdetails.ErrorInfo
	require.NoError(t, st.GetDetails()[0].UnmarshalTo(&ei))
	require.Equal(t, "ENOENT", ei.GetReason())
	require.Equal(t, "NotFound", ei.GetMetadata()["kind"])
	require.Equal(t, "vol.get", ei.GetMetadata()["op"])
	require.Equal(t, "r-42", ei.GetMetadata()["request_id"])
}

func TestWrite_RetryAfter(t *testing.T) {
	w := Writer{Mapper: mapper.Default}
	rec := httptest.NewRecorder()

	w.Write(rec, kind.WouldBlock, Meta{RetryAfterSeconds: 3})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "3", rec.Header().Get("Retry-After"))

	st := decode(t, rec)
	require.Len(t, st.GetDetails(), 2)
	var ri errdetails.RetryInfo
	require.NoError(t, st.GetDetails()[1].UnmarshalTo(&ri))
	require.Equal(t, 3*time.Second, ri.GetRetryDelay().AsDuration())
}

func TestWrite_ForeignError(t *testing.T) {
	w := Writer{Mapper: mapper.Default}
	rec := httptest.NewRecorder()

	w.Write(rec, errors.New("disk on fire"), Meta{})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "EIO", rec.Header().Get("X-Errno"))
	st := decode(t, rec)
	require.Equal(t, int32(codes.Internal), st.GetCode())
	require.Equal(t, "disk on fire", st.GetMessage())
}

func TestWrite_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{Mapper: mapper.Default}.Write(rec, nil, Meta{})
	require.Zero(t, rec.Body.Len())
	require.Empty(t, rec.Header())
}

func TestHandler(t *testing.T) {
	w := Writer{Mapper: mapper.Default}
	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		if r.URL.Path == "/ok" {
			rw.WriteHeader(http.StatusNoContent)
			return nil
		}
		return kerrors.E(kind.PermissionDenied, "")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/vol/1", nil)
	req.Header.Set("X-Request-Id", "abc")
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	st := decode(t, rec)
	require.Equal(t, int32(codes.PermissionDenied), st.GetCode())
	require.Equal(t, errno.EACCES.Description(), st.GetMessage())
}
