package query

import (
	"errors"
	"io"
	"testing"

	"github.com/webgrove/rendertree"
)

const markup = "<html><h1>big</h1><h6>small</h6><p>body</p></html>"

func matchAll(t *testing.T, src string) []string {
	t.Helper()
	q, err := Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	s, err := rendertree.Open(markup)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var got []string
	for {
		node, err := s.Next()
		if errors.Is(err, io.EOF) {
			return got
		}
		if err != nil {
			t.Fatal(err)
		}
		ok, err := q.Match(node)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			continue
		}
		if text, isText := node.Text(); isText {
			got = append(got, text.Value)
		} else {
			got = append(got, node.Type().String())
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{src: `bold && font_size > 20`, want: []string{"big"}},
		{src: `type == "root"`, want: []string{"root"}},
		{src: `type == "text" && !bold`, want: []string{"body"}},
		{src: `font == "Times New Roman"`, want: []string{"big", "small", "body"}},
		{src: `y == 0.0`, want: []string{"root"}},
		{src: `value contains "a"`, want: []string{"small"}},
	}
	for _, tt := range tests {
		got := matchAll(t, tt.src)
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.src, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: match %d = %q, want %q", tt.src, i, got[i], tt.want[i])
			}
		}
	}
}

func TestCompileError(t *testing.T) {
	for _, src := range []string{`bold &&`, `nosuchfield > 1`, `font_size`} {
		if _, err := Compile(src); !errors.Is(err, ErrCompile) {
			t.Errorf("%q: err = %v, want ErrCompile", src, err)
		}
	}
}
