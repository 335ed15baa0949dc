package schema

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  Kind
	}{
		{"null", Null(), KindNull},
		{"undefined", Undefined(), KindUndefined},
		{"string", String("hi"), KindString},
		{"number", Number("42"), KindNumber},
		{"bool", Bool(true), KindBool},
		{"array", Array(Number("1")), KindArray},
		{"object", Object(map[string]Value{"a": Null()}), KindObject},
		{"unknown", Value{Kind: KindUnknown}, KindUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.value); got != tt.want {
			t.Errorf("%s: Classify() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRenderLiteral(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"null", Null(), "null"},
		{"undefined", Undefined(), "undefined"},
		{"plain string", String("MyApp"), "'MyApp'"},
		{"string with quote", String("We're here"), `'We\'re here'`},
		{"string with two quotes", String("a'b'c"), `'a\'b\'c'`},
		{"backslash is not escaped", String(`a\b`), `'a\b'`},
		{"newline is not escaped", String("a\nb"), "'a\nb'"},
		{"integer", Number("42"), "42"},
		{"float", Number("3.14"), "3.14"},
		{"negative", Number("-7"), "-7"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"object falls back", Object(nil), "unknown"},
		{"array falls back", Array(), "unknown"},
	}

	for _, tt := range tests {
		if got := RenderLiteral(tt.value); got != tt.want {
			t.Errorf("%s: RenderLiteral() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDecodeJSON(t *testing.T) {
	doc, err := DecodeJSON([]byte(`{"name":"app","port":8080,"ratio":0.5,"debug":true,"tags":["a","b"],"db":{"host":null}}`))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if doc.Kind != KindObject {
		t.Fatalf("top level kind = %v, want object", doc.Kind)
	}

	if got := doc.Obj["name"]; got.Kind != KindString || got.Str != "app" {
		t.Errorf("name = %+v", got)
	}
	if got := RenderLiteral(doc.Obj["port"]); got != "8080" {
		t.Errorf("port literal = %q, want 8080", got)
	}
	if got := RenderLiteral(doc.Obj["ratio"]); got != "0.5" {
		t.Errorf("ratio literal = %q, want 0.5", got)
	}
	if got := doc.Obj["tags"]; got.Kind != KindArray || len(got.Arr) != 2 {
		t.Errorf("tags = %+v", got)
	}
	if got := doc.Obj["db"].Obj["host"]; got.Kind != KindNull {
		t.Errorf("db.host kind = %v, want null", got.Kind)
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{"broken":`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same strings", String("x"), String("x"), true},
		{"different strings", String("x"), String("y"), false},
		{"string vs number token", String("1"), Number("1"), false},
		{"same numbers", Number("1.5"), Number("1.5"), true},
		{"same arrays", Array(String("a"), Number("1")), Array(String("a"), Number("1")), true},
		{"reordered arrays differ", Array(String("a"), String("b")), Array(String("b"), String("a")), false},
		{"same objects", Object(map[string]Value{"k": Bool(true)}), Object(map[string]Value{"k": Bool(true)}), true},
		{"extra key differs", Object(map[string]Value{"k": Bool(true)}), Object(map[string]Value{"k": Bool(true), "j": Null()}), false},
		{"nulls equal", Null(), Null(), true},
		{"null vs undefined", Null(), Undefined(), false},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%s: Equal() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValueSetDeduplicates(t *testing.T) {
	set := &ValueSet{}
	if !set.Add(String("a")) {
		t.Error("first add should succeed")
	}
	if set.Add(String("a")) {
		t.Error("duplicate add should be rejected")
	}
	if !set.Add(String("b")) {
		t.Error("distinct add should succeed")
	}
	// Deep equality, not identity: equal arrays collapse.
	if !set.Add(Array(Number("1"))) {
		t.Error("array add should succeed")
	}
	if set.Add(Array(Number("1"))) {
		t.Error("structurally equal array should be rejected")
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
}
