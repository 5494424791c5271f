package decode_test

import (
	"testing"

	"github.com/nayyaratul/chatbot-creation-flow/pkg/decode"
)

type sample struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
	Hidden string   `json:"-"`
}

func TestToMap(t *testing.T) {
	m, err := decode.ToMap(sample{ID: "a", Name: "First", Tags: []string{"x"}, Hidden: "secret"})
	if err != nil {
		t.Fatalf("ToMap() failed: %v", err)
	}

	if m["id"] != "a" || m["name"] != "First" {
		t.Errorf("ToMap() = %v, want id and name preserved", m)
	}
	if _, ok := m["Hidden"]; ok {
		t.Error("ToMap() included a json:\"-\" field")
	}
}

func TestFromMap(t *testing.T) {
	v, err := decode.FromMap[sample](map[string]any{
		"id":      "a",
		"name":    "First",
		"tags":    []any{"x", "y"},
		"unknown": "ignored",
	})
	if err != nil {
		t.Fatalf("FromMap() failed: %v", err)
	}

	if v.ID != "a" || v.Name != "First" || len(v.Tags) != 2 {
		t.Errorf("FromMap() = %+v, want populated sample", v)
	}
}

func TestFromMap_TypeMismatch(t *testing.T) {
	_, err := decode.FromMap[sample](map[string]any{"id": 42})
	if err == nil {
		t.Error("FromMap() succeeded with mismatched field type, want error")
	}
}

func TestRoundTrip_OverlaySemantics(t *testing.T) {
	base, err := decode.ToMap(sample{ID: "a", Name: "Before", Tags: []string{"x"}})
	if err != nil {
		t.Fatalf("ToMap() failed: %v", err)
	}

	base["name"] = "After"

	v, err := decode.FromMap[sample](base)
	if err != nil {
		t.Fatalf("FromMap() failed: %v", err)
	}

	if v.Name != "After" || v.ID != "a" || len(v.Tags) != 1 {
		t.Errorf("overlay round trip = %+v, want only name changed", v)
	}
}
