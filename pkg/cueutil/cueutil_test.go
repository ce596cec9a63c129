// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Config: {
	runtimes_dir?: string
	release?:      bool
	hooks?: {
		[string]: string
	}
}
`

func TestUnifyIntoMap(t *testing.T) {
	data := []byte(`
runtimes_dir: "runtimes"
release:      true
hooks: pre_build: "echo hi"
`)

	out, err := UnifyIntoMap(testSchema, data, "#Config", "config.cue")
	if err != nil {
		t.Fatalf("UnifyIntoMap() error = %v", err)
	}

	if out["runtimes_dir"] != "runtimes" {
		t.Errorf("runtimes_dir = %v, want runtimes", out["runtimes_dir"])
	}
	if out["release"] != true {
		t.Errorf("release = %v, want true", out["release"])
	}
}

func TestUnifyIntoMapSchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "wrong type",
			data: `release: "yes"`,
			want: "release",
		},
		{
			name: "unknown field",
			data: `no_such_field: 1`,
			want: "no_such_field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnifyIntoMap(testSchema, []byte(tt.data), "#Config", "config.cue")
			if err == nil {
				t.Fatal("UnifyIntoMap() should reject the schema violation")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should name the offending field %q, got %q", tt.want, err)
			}
		})
	}
}

func TestUnifyIntoMapSyntaxError(t *testing.T) {
	_, err := UnifyIntoMap(testSchema, []byte(`release: {`), "#Config", "config.cue")
	if err == nil {
		t.Fatal("UnifyIntoMap() should reject malformed CUE")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("error should name the file, got %q", err)
	}
}

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize(make([]byte, 10), 100, "small.cue"); err != nil {
		t.Errorf("CheckFileSize() = %v for data under the limit", err)
	}
	if err := CheckFileSize(make([]byte, 200), 100, "big.cue"); err == nil {
		t.Error("CheckFileSize() should reject data over the limit")
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"hooks"}, "hooks"},
		{[]string{"hooks", "pre_build"}, "hooks.pre_build"},
		{[]string{"entries", "0", "name"}, "entries[0].name"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
