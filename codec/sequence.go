package codec

import (
	"fmt"

	"github.com/ehsanranjbar/nestutils"
)

// SequenceCodec decodes nested sequences out of documents and encodes sequences into documents.
type SequenceCodec struct {
	format Format
	key    string
	paths  PathExtractor[any, nestutils.Sequence]
}

// NewSequenceCodec creates a SequenceCodec for the format registered under name.
func NewSequenceCodec(name string, opts ...func(*SequenceCodec)) (*SequenceCodec, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	c := &SequenceCodec{
		format: f,
		paths:  NewConvertPathExtractor(DocumentPathExtractor{}, toSequence),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// WithKey selects the sequence stored under the dot separated key instead of the document root.
func WithKey(key string) func(*SequenceCodec) {
	return func(c *SequenceCodec) {
		c.key = key
	}
}

// Format returns the format of the codec.
func (c *SequenceCodec) Format() Format {
	return c.format
}

// Decode decodes a document and returns the selected sequence.
//
// A null or empty value decodes to an empty sequence and a scalar to a one-element sequence.
// A table is rejected with ErrNotSequence.
func (c *SequenceCodec) Decode(bz []byte) (nestutils.Sequence, error) {
	doc, err := c.format.Codec.Decode(bz)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", c.format.Name, err)
	}

	if c.key == "" {
		if c.format.KeyRequired {
			return nil, fmt.Errorf("%s documents: %w", c.format.Name, ErrKeyRequired)
		}
		return toSequence(doc)
	}

	return c.paths.ExtractPath(doc, c.key)
}

// Encode encodes seq as the document root, or under the key if one is set.
func (c *SequenceCodec) Encode(seq nestutils.Sequence) ([]byte, error) {
	var doc any = seq
	if c.key != "" {
		doc = nest(c.key, seq)
	} else if c.format.KeyRequired {
		return nil, fmt.Errorf("%s documents: %w", c.format.Name, ErrKeyRequired)
	}

	bz, err := c.format.Codec.Encode(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s document: %w", c.format.Name, err)
	}
	return bz, nil
}

func toSequence(v any) (nestutils.Sequence, error) {
	switch v.(type) {
	case nil:
		return nestutils.Sequence{}, nil
	case map[string]any, map[any]any:
		return nil, ErrNotSequence
	}

	if items, ok := (nestutils.Options{}).Unwrap(v); ok {
		return nestutils.Sequence(items), nil
	}
	return nestutils.Sequence{v}, nil
}
