package svg

import (
	"errors"
	"strings"
	"testing"
)

func TestAttrsSortedSerialization(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{
			name: "already sorted",
			keys: []string{"a", "b", "c"},
			want: `a="v" b="v" c="v"`,
		},
		{
			name: "reverse insertion",
			keys: []string{"c", "b", "a"},
			want: `a="v" b="v" c="v"`,
		},
		{
			name: "scrambled insertion",
			keys: []string{"width", "cx", "height", "fill"},
			want: `cx="v" fill="v" height="v" width="v"`,
		},
		{
			name: "single key",
			keys: []string{"x"},
			want: `x="v"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := NewAttrs()
			for _, k := range tt.keys {
				attrs.Set(k, "v")
			}
			if got := attrs.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrsSetAndGet(t *testing.T) {
	attrs := NewAttrs()
	attrs.Set("ten", 10)
	attrs.Set("hello", "hi")
	attrs.Set("pi", 3.14)

	tests := []struct {
		key  string
		want string
	}{
		{"ten", "10"},
		{"hello", "hi"},
		{"pi", "3.14"},
	}

	for _, tt := range tests {
		got, err := attrs.Get(tt.key)
		if err != nil {
			t.Fatalf("Get(%q) returned error: %v", tt.key, err)
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestAttrsGetMissing(t *testing.T) {
	attrs := NewAttrs()
	attrs.Set("present", 1)

	_, err := attrs.Get("absent")
	if err == nil {
		t.Fatal("Get on unset key should fail")
	}
	if !errors.Is(err, ErrAttrNotFound) {
		t.Errorf("error = %v, want ErrAttrNotFound", err)
	}
	if !strings.Contains(err.Error(), "absent") {
		t.Errorf("error %q should name the missing key", err)
	}
}

func TestAttrsOverwrite(t *testing.T) {
	attrs := NewAttrs()
	attrs.Set("fill", "red")
	attrs.Set("fill", "blue")

	got, err := attrs.Get("fill")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "blue" {
		t.Errorf("Get after overwrite = %q, want %q", got, "blue")
	}
	if s := attrs.String(); s != `fill="blue"` {
		t.Errorf("String() = %q, want %q", s, `fill="blue"`)
	}
}

func TestAttrsEmpty(t *testing.T) {
	attrs := NewAttrs()
	if got := attrs.String(); got != "" {
		t.Errorf("empty map String() = %q, want empty", got)
	}
}

func TestAttrsValueConversion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "plain", "plain"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"float", 2.5, "2.5"},
		{"whole float", 100.0, "100"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := NewAttrs()
			attrs.Set("k", tt.value)
			got, err := attrs.Get("k")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Set(%v) stored %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
