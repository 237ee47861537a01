package timeline

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chartfold/chartfold/internal/domain/procedure"
)

func TestSurgical_NoLimitReturnsWholeTimeline(t *testing.T) {
	procs := &mockProcRepo{}
	for i := 1; i <= 60; i++ {
		procs.procedures = append(procs.procedures, &procedure.Procedure{
			ID:     int64(i),
			Source: "epic_anderson",
			Date:   fmt.Sprintf("2025-01-%02d", i%28+1),
			Name:   "procedure",
		})
	}
	h := NewHandler(newTestService(procs, paths(), &mockImagingRepo{}, &mockMedRepo{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/timeline/surgical", nil)
	rec := httptest.NewRecorder()

	if err := h.Surgical(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var entries []Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(entries) != 60 {
		t.Errorf("expected all 60 procedures without a limit parameter, got %d", len(entries))
	}
}

func TestSurgical_ExplicitLimitStillApplies(t *testing.T) {
	procs := &mockProcRepo{}
	for i := 1; i <= 5; i++ {
		procs.procedures = append(procs.procedures, &procedure.Procedure{
			ID:     int64(i),
			Source: "epic_anderson",
			Date:   fmt.Sprintf("2025-01-0%d", i),
			Name:   "procedure",
		})
	}
	h := NewHandler(newTestService(procs, paths(), &mockImagingRepo{}, &mockMedRepo{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/timeline/surgical?limit=2", nil)
	rec := httptest.NewRecorder()

	if err := h.Surgical(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entries []Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries with limit=2, got %d", len(entries))
	}
}
