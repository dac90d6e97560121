package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/waskito/ocpi-versions/internal/domain"
)

func TestTimestamp_MarshalJSON(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	ts := domain.Timestamp(time.Date(2025, 3, 1, 17, 4, 5, 999_000_000, loc))

	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(b), `"2025-03-01T10:04:05Z"`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var ts domain.Timestamp
	if err := json.Unmarshal([]byte(`"2025-03-01T10:04:05Z"`), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 1, 10, 4, 5, 0, time.UTC)
	if !time.Time(ts).Equal(want) {
		t.Fatalf("expected %v, got %v", want, time.Time(ts))
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("expected error for malformed timestamp")
	}
	if err := json.Unmarshal([]byte(`12`), &ts); err == nil {
		t.Fatal("expected error for non-string timestamp")
	}
}

func TestStatusCode_Message(t *testing.T) {
	tests := []struct {
		code domain.StatusCode
		want string
	}{
		{domain.StatusSuccess, "Success"},
		{domain.StatusUnknownVersion, "Unknown version"},
		{domain.StatusClientError, "Generic client error"},
		{domain.StatusServerError, "Generic server error"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.code.Message(); got != tc.want {
				t.Fatalf("code %d: expected %q, got %q", tc.code, tc.want, got)
			}
		})
	}
}

func TestFailure_OmitsData(t *testing.T) {
	b, err := json.Marshal(domain.Failure(domain.StatusUnknownVersion, time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("expected no data field, got %s", b)
	}
	if body["status_code"] != float64(2003) {
		t.Fatalf("expected status_code=2003, got %v", body["status_code"])
	}
	if body["timestamp"] != "1970-01-01T00:00:00Z" {
		t.Fatalf("unexpected timestamp %v", body["timestamp"])
	}
}

func TestSuccess_KeepsEmptySlice(t *testing.T) {
	b, err := json.Marshal(domain.Success([]domain.Version{}, time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"data":[],"status_code":1000,"status_message":"Success","timestamp":"1970-01-01T00:00:00Z"}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestInterfaceRole_IsValid(t *testing.T) {
	for _, m := range domain.Modules221 {
		if !m.Role.IsValid() {
			t.Fatalf("module %s: invalid role %q", m.Module, m.Role)
		}
	}
	if domain.InterfaceRole("BOTH").IsValid() {
		t.Fatal("expected BOTH to be rejected")
	}
}
