package codec

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ehsanranjbar/nestutils/internal/ordmap"
)

// Format describes a document format.
type Format struct {
	Name       string
	Extensions []string
	// Binary formats are not terminated with a newline when printed.
	Binary bool
	// KeyRequired is set when the document root is always a table, so sequences must live under a key.
	KeyRequired bool
	Codec       Codec[any]
}

var formats = ordmap.New[string, Format]()

func init() {
	for _, f := range []Format{
		{Name: "json", Extensions: []string{"json"}, Codec: JSONCodec{}},
		{Name: "yaml", Extensions: []string{"yaml", "yml"}, Codec: YAMLCodec{}},
		{Name: "msgpack", Extensions: []string{"msgpack", "mpk"}, Binary: true, Codec: MsgpackCodec{}},
		{Name: "toml", Extensions: []string{"toml"}, KeyRequired: true, Codec: TOMLCodec{}},
	} {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}

// Register adds a format. Names are case-insensitive and must be unique.
func Register(f Format) error {
	if f.Codec == nil {
		return fmt.Errorf("format %q has no codec", f.Name)
	}

	f.Name = strings.ToLower(f.Name)
	if err := formats.Add(f.Name, f); err != nil {
		return fmt.Errorf("failed to register format %q: %w", f.Name, err)
	}
	return nil
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, error) {
	f, ok := formats.Get(strings.ToLower(name))
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Formats returns the registered formats in registration order.
func Formats() []Format {
	return slices.Collect(formats.Values())
}

// FormatFromPath returns the format whose extensions include the extension of path.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return Format{}, false
	}

	for f := range formats.Values() {
		if slices.Contains(f.Extensions, ext) {
			return f, true
		}
	}
	return Format{}, false
}
