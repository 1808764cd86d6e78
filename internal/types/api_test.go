// internal/types/api_test.go
package types

import "testing"

func TestPaginationParams_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		ok       bool
	}{
		{"defaults", 1, 10, true},
		{"max page size", 7, 100, true},
		{"zero page", 0, 10, false},
		{"zero page size", 1, 0, false},
		{"oversize page", 1, 101, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PaginationParams{Page: tc.page, PageSize: tc.pageSize}
			err := p.Validate()
			if tc.ok && err != nil {
				t.Fatalf("rejected: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("accepted out-of-bounds pagination")
			}
		})
	}
}

func TestNewPaginationParams(t *testing.T) {
	p := NewPaginationParams()
	if p.Page != 1 || p.PageSize != 10 {
		t.Fatalf("defaults = %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}

func TestFail_UsesErrorMessage(t *testing.T) {
	resp := Fail(NewNotFoundError(""))
	if resp.Success {
		t.Error("Fail reported success")
	}
	if resp.Error != "Resource not found" {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestOK_WrapsData(t *testing.T) {
	resp := OK("done", Number(42))
	if !resp.Success || resp.Data == nil {
		t.Fatalf("resp = %+v", resp)
	}
	if n, ok := resp.Data.AsNumber(); !ok || n != 42 {
		t.Errorf("data = %v", resp.Data)
	}
}
