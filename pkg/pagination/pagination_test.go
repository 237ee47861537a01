package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(t, ""))
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "limit=10&offset=30"))
	if p.Limit != 10 || p.Offset != 30 {
		t.Errorf("expected 10/30, got %+v", p)
	}
}

func TestFromContextWithDefault_UsesCallerDefault(t *testing.T) {
	p := FromContextWithDefault(ctxWithQuery(t, ""), 0)
	if p.Limit != 0 {
		t.Errorf("expected caller default 0, got %d", p.Limit)
	}

	p = FromContextWithDefault(ctxWithQuery(t, "limit=5"), 0)
	if p.Limit != 5 {
		t.Errorf("explicit limit must win over the default, got %d", p.Limit)
	}
}

func TestFromContext_ZeroLimitMeansUnbounded(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "limit=0"))
	if p.Limit != 0 {
		t.Errorf("expected limit 0 preserved, got %d", p.Limit)
	}
}

func TestFromContext_ClampsMax(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "limit=10000"))
	if p.Limit != MaxLimit {
		t.Errorf("expected clamp to %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "offset=-5"))
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		n, limit, offset, lo, hi int
	}{
		{10, 0, 0, 0, 10},
		{10, 3, 0, 0, 3},
		{10, 3, 8, 8, 10},
		{10, 0, 4, 4, 10},
		{10, 5, 20, 10, 10},
	}
	for _, tc := range cases {
		lo, hi := Window(tc.n, tc.limit, tc.offset)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("Window(%d,%d,%d) = %d,%d; want %d,%d",
				tc.n, tc.limit, tc.offset, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	if r := NewResponse(nil, 100, 20, 0); !r.HasMore {
		t.Error("expected HasMore true for first page of 100")
	}
	if r := NewResponse(nil, 100, 20, 90); r.HasMore {
		t.Error("expected HasMore false on last page")
	}
	if r := NewResponse(nil, 100, 0, 0); r.HasMore {
		t.Error("expected HasMore false for unbounded limit")
	}
}
