// Package config is a typed key/value settings store with a text
// encoding per value, YAML file storage, and JSON merge-patch updates.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates setting values.
type Kind int

const (
	BoolSetting Kind = iota
	IntSetting
	UintSetting
	StringSetting
	ListSetting
)

func (k Kind) String() string {
	switch k {
	case BoolSetting:
		return "bool"
	case IntSetting:
		return "int"
	case UintSetting:
		return "uint"
	case StringSetting:
		return "string"
	case ListSetting:
		return "list"
	default:
		return "unknown"
	}
}

// Setting is one typed value. The text encoding prefixes the value with
// its kind:
//
//	b:true
//	i:-123
//	u:234
//	s:hello world
//	m:foo,bar,baz
type Setting struct {
	Kind Kind
	Bool bool
	Int  int64
	Uint uint64
	Str  string
	List []string
}

// Bool/Int/Uint/Str/List build settings of the corresponding kind.
func Bool(v bool) Setting     { return Setting{Kind: BoolSetting, Bool: v} }
func Int(v int64) Setting     { return Setting{Kind: IntSetting, Int: v} }
func Uint(v uint64) Setting   { return Setting{Kind: UintSetting, Uint: v} }
func Str(v string) Setting    { return Setting{Kind: StringSetting, Str: v} }
func List(v []string) Setting { return Setting{Kind: ListSetting, List: v} }

// ParseSetting decodes the text encoding. Unknown prefixes and malformed
// payloads return ErrBadSetting.
func ParseSetting(v string) (Setting, error) {
	kind, payload, ok := strings.Cut(v, ":")
	if !ok {
		return Setting{}, fmt.Errorf("%w: missing kind prefix in %q", ErrBadSetting, v)
	}
	switch kind {
	case "b":
		b, err := strconv.ParseBool(payload)
		if err != nil {
			return Setting{}, fmt.Errorf("%w: %q", ErrBadSetting, v)
		}
		return Bool(b), nil
	case "i":
		i, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return Setting{}, fmt.Errorf("%w: %q", ErrBadSetting, v)
		}
		return Int(i), nil
	case "u":
		u, err := strconv.ParseUint(payload, 10, 64)
		if err != nil {
			return Setting{}, fmt.Errorf("%w: %q", ErrBadSetting, v)
		}
		return Uint(u), nil
	case "s":
		return Str(payload), nil
	case "m":
		return List(strings.Split(payload, ",")), nil
	default:
		return Setting{}, fmt.Errorf("%w: unknown kind %q", ErrBadSetting, kind)
	}
}

// String encodes the setting in its text form.
func (s Setting) String() string {
	switch s.Kind {
	case BoolSetting:
		return "b:" + strconv.FormatBool(s.Bool)
	case IntSetting:
		return "i:" + strconv.FormatInt(s.Int, 10)
	case UintSetting:
		return "u:" + strconv.FormatUint(s.Uint, 10)
	case StringSetting:
		return "s:" + s.Str
	case ListSetting:
		return "m:" + strings.Join(s.List, ",")
	default:
		return ""
	}
}
