package models

import (
	"encoding/json"
	"testing"
	"time"
)

// gin binds request bodies with encoding/json, so that is the decoder under test.

func TestNullable_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{
			name:      "field present with string value",
			json:      `{"mood": "calm"}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "calm",
		},
		{
			name:      "field present with null value",
			json:      `{"mood": null}`,
			wantSet:   true,
			wantValid: false,
			wantValue: "",
		},
		{
			name:      "field absent",
			json:      `{}`,
			wantSet:   false,
			wantValid: false,
			wantValue: "",
		},
		{
			name:      "field present with empty string",
			json:      `{"mood": ""}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Mood Nullable[string] `json:"mood"`
			}
			if err := json.Unmarshal([]byte(tt.json), &result); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Mood.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", result.Mood.Set, tt.wantSet)
			}
			if result.Mood.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Mood.Valid, tt.wantValid)
			}
			if result.Mood.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", result.Mood.Value, tt.wantValue)
			}
		})
	}
}

func TestNullable_UnmarshalJSON_Time(t *testing.T) {
	var result struct {
		Date Nullable[time.Time] `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date": "2024-01-15T10:30:00Z"}`), &result); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !result.Date.Valid || !result.Date.Value.Equal(want) {
		t.Errorf("Date = %+v, want %v", result.Date, want)
	}
}

func TestNullable_UnmarshalJSON_WrongType(t *testing.T) {
	var result struct {
		Mood Nullable[string] `json:"mood"`
	}
	if err := json.Unmarshal([]byte(`{"mood": 42}`), &result); err == nil {
		t.Error("Unmarshal of a number into Nullable[string] succeeded, want error")
	}
}

func TestNullable_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		n    Nullable[string]
		want string
	}{
		{"valid", NewNullable("calm"), `"calm"`},
		{"null", Null[string](), `null`},
		{"absent", Nullable[string]{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.n)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNullable_Ptr(t *testing.T) {
	tests := []struct {
		name    string
		n       Nullable[string]
		wantNil bool
		wantVal string
	}{
		{"valid string", NewNullable("calm"), false, "calm"},
		{"null value", Null[string](), true, ""},
		{"not set", Nullable[string]{}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr := tt.n.Ptr()
			if tt.wantNil {
				if ptr != nil {
					t.Errorf("Ptr() = %v, want nil", *ptr)
				}
				return
			}
			if ptr == nil {
				t.Fatalf("Ptr() = nil, want %q", tt.wantVal)
			}
			if *ptr != tt.wantVal {
				t.Errorf("Ptr() = %q, want %q", *ptr, tt.wantVal)
			}
		})
	}
}
