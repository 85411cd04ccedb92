package desc

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors maps listing parts to sprint functions.
type Colors struct {
	Type  func(...any) string
	Value func(...any) string
	Attr  func(...any) string
	Num   func(...any) string
	Sep   func(...any) string
}

// NewColors returns the default terminal palette.
func NewColors() *Colors {
	return &Colors{
		Type:  color.RGB(128, 168, 196).SprintFunc(),
		Value: color.RGB(8, 196, 16).SprintFunc(),
		Attr:  color.RGB(196, 168, 128).SprintFunc(),
		Num:   color.RGB(128, 216, 236).SprintFunc(),
		Sep:   color.RGB(255, 0, 196).SprintFunc(),
	}
}

func noColors() *Colors {
	plain := func(a ...any) string { return fmt.Sprint(a...) }
	return &Colors{Type: plain, Value: plain, Attr: plain, Num: plain, Sep: plain}
}
