package handler

import (
	"net/http/httptest"
	"testing"
)

func TestListParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
		wantErr    bool
	}{
		{"defaults", "", 0, 100, false},
		{"explicit", "?offset=20&limit=50", 20, 50, false},
		{"limit at lower bound", "?limit=1", 0, 1, false},
		{"limit at upper bound", "?limit=500", 0, 500, false},
		{"limit zero", "?limit=0", 0, 0, true},
		{"limit over max", "?limit=501", 0, 0, true},
		{"negative offset", "?offset=-1", 0, 0, true},
		{"non-numeric offset", "?offset=abc", 0, 0, true},
		{"non-numeric limit", "?limit=abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/items"+tt.query, nil)
			offset, limit, err := listParams(req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("got (%d, %d), want (%d, %d)", offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestQueryBool(t *testing.T) {
	req := httptest.NewRequest("GET", "/items?flag=true", nil)
	v, err := queryBool(req, "flag")
	if err != nil || v == nil || !*v {
		t.Errorf("flag=true: %v %v", v, err)
	}

	req = httptest.NewRequest("GET", "/items", nil)
	v, err = queryBool(req, "flag")
	if err != nil || v != nil {
		t.Errorf("absent flag: %v %v", v, err)
	}

	req = httptest.NewRequest("GET", "/items?flag=maybe", nil)
	if _, err = queryBool(req, "flag"); err == nil {
		t.Error("flag=maybe accepted")
	}
}
