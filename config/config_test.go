package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

type settingTest struct {
	in   string
	want Setting
	e    error
}

func TestParseSetting(t *testing.T) {
	pts := []settingTest{
		{in: "b:true", want: Bool(true)},
		{in: "b:false", want: Bool(false)},
		{in: "i:-123", want: Int(-123)},
		{in: "u:234", want: Uint(234)},
		{in: "s:hello world", want: Str("hello world")},
		{in: "s:", want: Str("")},
		{in: "m:foo,bar,baz", want: List([]string{"foo", "bar", "baz"})},
		{in: "b:maybe", e: ErrBadSetting},
		{in: "i:abc", e: ErrBadSetting},
		{in: "u:-1", e: ErrBadSetting},
		{in: "x:nope", e: ErrBadSetting},
		{in: "noprefix", e: ErrBadSetting},
	}
	for i := range pts {
		pt := &pts[i]
		got, err := ParseSetting(pt.in)
		if pt.e != nil {
			if !errors.Is(err, pt.e) {
				t.Errorf("%q: err = %v, want %v", pt.in, err, pt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if got.String() != pt.want.String() {
			t.Errorf("%q: got %v, want %v", pt.in, got, pt.want)
		}
		// text round trip
		if got.String() != pt.in {
			t.Errorf("%q: re-encoded as %q", pt.in, got.String())
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore()
	st.Set("render.debug", Bool(true))
	st.Set("render.dpi", Uint(96))
	st.Set("useragent.name", Str("webgrove"))
	st.Set("fonts.fallback", List([]string{"serif", "sans"}))

	buf := bytes.NewBuffer(nil)
	if err := st.Save(buf); err != nil {
		t.Fatal(err)
	}

	st2 := NewStore()
	if err := st2.Load(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatal(err)
	}
	if st2.Len() != st.Len() {
		t.Fatalf("round trip length %d, want %d", st2.Len(), st.Len())
	}
	for _, k := range st.Keys() {
		a, _ := st.Get(k)
		b, ok := st2.Get(k)
		if !ok || a.String() != b.String() {
			t.Errorf("key %q: %v -> %v", k, a, b)
		}
	}
}

func TestStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	st, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Len() != 0 {
		t.Fatalf("missing file produced %d entries", st.Len())
	}

	st.Set("a", Int(1))
	if err := st.SaveFile(path); err != nil {
		t.Fatal(err)
	}

	st2, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := st2.Get("a")
	if !ok || got.Int != 1 {
		t.Errorf("reloaded: %v %v", got, ok)
	}
}

func TestMergeJSON(t *testing.T) {
	st := NewStore()
	st.Set("a", Int(1))
	st.Set("b", Str("keep"))
	st.Set("c", Bool(true))

	patch := []byte(`{"a": "i:2", "c": null, "d": "m:x,y"}`)
	if err := st.MergeJSON(patch); err != nil {
		t.Fatal(err)
	}

	if got, _ := st.Get("a"); got.Int != 2 {
		t.Errorf("a = %v", got)
	}
	if got, _ := st.Get("b"); got.Str != "keep" {
		t.Errorf("b = %v", got)
	}
	if st.Has("c") {
		t.Error("c survived a null patch")
	}
	if got, _ := st.Get("d"); len(got.List) != 2 || got.List[0] != "x" {
		t.Errorf("d = %v", got)
	}
}

func TestMergeJSONBad(t *testing.T) {
	st := NewStore()
	st.Set("a", Int(1))
	if err := st.MergeJSON([]byte(`{"a": "not-a-setting"}`)); !errors.Is(err, ErrBadSetting) {
		t.Errorf("err = %v, want ErrBadSetting", err)
	}
	if err := st.MergeJSON([]byte(`{`)); !errors.Is(err, ErrBadPatch) {
		t.Errorf("err = %v, want ErrBadPatch", err)
	}
}
