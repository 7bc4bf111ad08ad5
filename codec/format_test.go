package codec_test

import (
	"testing"

	"github.com/ehsanranjbar/nestutils/codec"
	"github.com/ehsanranjbar/nestutils/internal/ordmap"
	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	var names []string
	for _, f := range codec.Formats() {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"json", "yaml", "msgpack", "toml"}, names[:4])
}

func TestLookup(t *testing.T) {
	f, err := codec.Lookup("YAML")
	require.NoError(t, err)
	require.Equal(t, "yaml", f.Name)

	_, err = codec.Lookup("csv")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{path: "data.json", want: "json", ok: true},
		{path: "/tmp/conf.YML", want: "yaml", ok: true},
		{path: "dump.mpk", want: "msgpack", ok: true},
		{path: "a/b.toml", want: "toml", ok: true},
		{path: "noext", ok: false},
		{path: "file.txt", ok: false},
	}

	for _, tt := range tests {
		f, ok := codec.FormatFromPath(tt.path)
		require.Equal(t, tt.ok, ok, tt.path)
		require.Equal(t, tt.want, f.Name, tt.path)
	}
}

func TestRegister(t *testing.T) {
	err := codec.Register(codec.Format{Name: "JSON", Codec: codec.JSONCodec{}})
	require.ErrorIs(t, err, ordmap.ErrKeyExists)

	err = codec.Register(codec.Format{Name: "nocodec"})
	require.Error(t, err)

	err = codec.Register(codec.Format{Name: "ndjson-test", Extensions: []string{"ndj"}, Codec: codec.JSONCodec{}})
	require.NoError(t, err)

	f, ok := codec.FormatFromPath("x.ndj")
	require.True(t, ok)
	require.Equal(t, "ndjson-test", f.Name)
}
