// SPDX-License-Identifier: MPL-2.0

package ordjson

import (
	"errors"
	"slices"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	obj, err := Parse([]byte(`{"version":"1.0.0","name":"pkg","main":"index.js","cpu":["x64"]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"version", "name", "main", "cpu"}
	if got := obj.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestParseValueTypes(t *testing.T) {
	t.Parallel()

	obj, err := Parse([]byte(`{"s":"x","n":1.50,"t":true,"f":false,"z":null,"a":[1,"two"],"o":{"k":"v"}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if v, _ := obj.Get("s"); v != "x" {
		t.Errorf("s = %#v", v)
	}
	if v, _ := obj.Get("n"); v != json.Number("1.50") {
		t.Errorf("n = %#v, want json.Number(1.50)", v)
	}
	if v, _ := obj.Get("t"); v != true {
		t.Errorf("t = %#v", v)
	}
	if v, _ := obj.Get("f"); v != false {
		t.Errorf("f = %#v", v)
	}
	if v, ok := obj.Get("z"); !ok || v != nil {
		t.Errorf("z = %#v, present %v", v, ok)
	}
	rawArr, _ := obj.Get("a")
	arr, ok := rawArr.([]any)
	if !ok || len(arr) != 2 || arr[0] != json.Number("1") || arr[1] != "two" {
		t.Errorf("a = %#v", rawArr)
	}
	nested, _ := obj.Get("o")
	inner, ok := nested.(*Object)
	if !ok {
		t.Fatalf("o = %T, want *Object", nested)
	}
	if v, _ := inner.Get("k"); v != "v" {
		t.Errorf("o.k = %#v", v)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantNotObj bool
	}{
		{name: "empty", input: ""},
		{name: "truncated", input: `{"name": "x"`},
		{name: "trailing comma", input: `{"name": "x",}`},
		{name: "missing colon", input: `{"name" "x"}`},
		{name: "trailing garbage", input: `{"name": "x"} extra`},
		{name: "array", input: `["name"]`, wantNotObj: true},
		{name: "string", input: `"name"`, wantNotObj: true},
		{name: "null", input: `null`, wantNotObj: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) returned nil error", tt.input)
			}
			if got := errors.Is(err, ErrNotObject); got != tt.wantNotObj {
				t.Errorf("errors.Is(err, ErrNotObject) = %v, want %v (err: %v)", got, tt.wantNotObj, err)
			}
		})
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	t.Parallel()

	obj, err := Parse([]byte(`{"name":"first","version":"1","name":"last"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := obj.Keys(), []string{"name", "version"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := obj.Get("name"); v != "last" {
		t.Errorf("name = %v, want last", v)
	}
}

func TestMarshalIndentRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		indent int
	}{
		{
			name: "package descriptor",
			input: `{
  "name": "anni-javascript-binding-linux-x64-gnu",
  "version": "0.1.0",
  "os": [
    "linux"
  ],
  "cpu": [
    "x64"
  ],
  "main": "anni-javascript-binding.linux-x64-gnu.node",
  "files": [
    "anni-javascript-binding.linux-x64-gnu.node"
  ],
  "license": "MIT",
  "engines": {
    "node": ">= 10"
  },
  "libc": [
    "glibc"
  ]
}`,
			indent: 2,
		},
		{
			name:   "empty containers",
			input:  "{\n  \"a\": {},\n  \"b\": []\n}",
			indent: 2,
		},
		{
			name:   "numbers verbatim",
			input:  "{\n    \"f\": 1.0,\n    \"e\": 1e3,\n    \"big\": 12345678901234567890,\n    \"neg\": -0.5\n}",
			indent: 4,
		},
		{
			name:   "html and unicode are not escaped",
			input:  `{"description":"Node & Rust <bindings> für Anni"}`,
			indent: 0,
		},
		{
			name:   "escapes survive",
			input:  `{"s":"quote \" backslash \\ newline \n tab \t"}`,
			indent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obj, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			out, err := MarshalIndent(obj, tt.indent)
			if err != nil {
				t.Fatalf("MarshalIndent() error = %v", err)
			}
			if string(out) != tt.input {
				t.Errorf("round trip mismatch\n got: %s\nwant: %s", out, tt.input)
			}
		})
	}
}

func TestMarshalIndentReformats(t *testing.T) {
	t.Parallel()

	obj, err := Parse([]byte(`{"name":"x","nested":{"list":[1,2]}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := MarshalIndent(obj, 2)
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	want := "{\n  \"name\": \"x\",\n  \"nested\": {\n    \"list\": [\n      1,\n      2\n    ]\n  }\n}"
	if string(out) != want {
		t.Errorf("MarshalIndent() =\n%s\nwant\n%s", out, want)
	}
}

func TestUnmarshalJSONViaDecoder(t *testing.T) {
	t.Parallel()

	var wrapper struct {
		Meta *Object `json:"meta"`
	}
	if err := json.Unmarshal([]byte(`{"meta":{"z":1,"a":2}}`), &wrapper); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if wrapper.Meta == nil {
		t.Fatal("Meta was not decoded")
	}
	if got, want := wrapper.Meta.Keys(), []string{"z", "a"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMarshalSetValues(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("name", "@scope/pkg")
	obj.Set("count", 3)
	obj.Set("nested", NewObject())

	out, err := MarshalIndent(obj, 0)
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	if want := `{"name":"@scope/pkg","count":3,"nested":{}}`; string(out) != want {
		t.Errorf("MarshalIndent() = %s, want %s", out, want)
	}
}
