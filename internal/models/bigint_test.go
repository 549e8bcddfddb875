package models

import (
	"encoding/json"
	"testing"
)

func TestBigIntMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   BigInt
		want string
	}{
		{"zero", 0, `0`},
		{"small id", 42, `42`},
		{"max safe integer", maxSafeInteger, `9007199254740991`},
		{"above max safe integer", maxSafeInteger + 1, `"9007199254740992"`},
		{"negative beyond range", -(maxSafeInteger + 10), `"-9007199254741001"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBigIntUnmarshalJSON(t *testing.T) {
	var payload struct {
		A BigInt `json:"a"`
		B BigInt `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 7, "b": "9223372036854775807"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.A != 7 {
		t.Errorf("expected 7, got %d", payload.A)
	}
	if payload.B != 9223372036854775807 {
		t.Errorf("expected max int64, got %d", payload.B)
	}

	var bad BigInt
	if err := json.Unmarshal([]byte(`"abc"`), &bad); err == nil {
		t.Error("expected error for non numeric string")
	}
}
