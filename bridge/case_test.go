package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FooBar", "foo_bar"},
		{"fooBar", "foo_bar"},
		{"foo_bar", "foo_bar"},
		{"HTTPServer", "http_server"},
		{"x", "x"},
		{"X", "x"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeCase(tt.in), "SnakeCase(%q)", tt.in)
	}
}

func TestSnakeCaseIdempotent(t *testing.T) {
	for _, s := range []string{"foo_bar", "already_snake", "x", "http_server"} {
		assert.Equal(t, s, SnakeCase(SnakeCase(s)))
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo_bar", "FooBar"},
		{"fooBar", "FooBar"},
		{"FooBar", "FooBar"},
		{"x", "X"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PascalCase(tt.in), "PascalCase(%q)", tt.in)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo_bar", "fooBar"},
		{"FooBar", "fooBar"},
		{"fooBar", "fooBar"},
		{"x", "x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelCase(tt.in), "CamelCase(%q)", tt.in)
	}
}

// camel(pascal(camel(s))) == camel(s) for any identifier.
func TestCamelPascalRoundTrip(t *testing.T) {
	for _, s := range []string{"foo_bar", "FooBar", "fooBar", "http_server", "a"} {
		camel := CamelCase(s)
		assert.Equal(t, camel, CamelCase(PascalCase(camel)), "identifier %q", s)
	}
}
