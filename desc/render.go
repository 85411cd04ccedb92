package desc

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Format selects the rendering of a record list.
type Format int

const (
	// YAMLFormat renders records as a YAML document list.
	YAMLFormat Format = iota
	// JSONFormat renders records as an indented JSON array.
	JSONFormat
	// TermFormat renders a one-line-per-node listing, optionally
	// colorized.
	TermFormat
)

// ParseFormat maps a format name (yaml/y, json/j, term/t) to a Format.
func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"yaml": YAMLFormat, "y": YAMLFormat,
		"json": JSONFormat, "j": JSONFormat,
		"term": TermFormat, "t": TermFormat,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
	}
	return f, nil
}

type renderOpts struct {
	format Format
	colors *Colors
}

// RenderOption configures Render.
type RenderOption func(*renderOpts)

// RenderFormat selects the output format.
func RenderFormat(f Format) RenderOption {
	return func(o *renderOpts) { o.format = f }
}

// RenderColors colorizes TermFormat output. Ignored for the data formats.
func RenderColors(c *Colors) RenderOption {
	return func(o *renderOpts) { o.colors = c }
}

// Render writes records to w in the configured format.
func Render(w io.Writer, recs []Record, opts ...RenderOption) error {
	o := &renderOpts{}
	for _, opt := range opts {
		opt(o)
	}
	switch o.format {
	case YAMLFormat:
		d, err := yaml.Marshal(recs)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case JSONFormat:
		d, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	case TermFormat:
		return renderTerm(w, recs, o.colors)
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, o.format)
	}
}

func renderTerm(w io.Writer, recs []Record, colors *Colors) error {
	if colors == nil {
		colors = noColors()
	}
	for _, rec := range recs {
		var line string
		switch rec.Type {
		case "text":
			weight := "plain"
			if rec.Bold {
				weight = "bold"
			}
			line = fmt.Sprintf("%s %s %s %s %s",
				colors.Type(rec.Type),
				colors.Value(fmt.Sprintf("%q", rec.Value)),
				colors.Attr(fmt.Sprintf("%s %g %s", rec.Font, rec.Size, weight)),
				colors.Sep("@"),
				colors.Num(fmt.Sprintf("(%g, %g)", rec.Position.X, rec.Position.Y)))
		default:
			line = fmt.Sprintf("%s %s %s",
				colors.Type(rec.Type),
				colors.Sep("@"),
				colors.Num(fmt.Sprintf("(%g, %g)", rec.Position.X, rec.Position.Y)))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
