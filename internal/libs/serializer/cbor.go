package serializer

import (
	"github.com/ugorji/go/codec"

	"github.com/hyp3rd/ewrap"
)

// CBORSerializer encodes report documents as CBOR using ugorji/go/codec.
type CBORSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*CBORSerializer) Marshal(v any) ([]byte, error) {
	var data []byte

	err := codec.NewEncoderBytes(&data, &codec.CborHandle{}).Encode(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal cbor")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*CBORSerializer) Unmarshal(data []byte, v any) error {
	err := codec.NewDecoderBytes(data, &codec.CborHandle{}).Decode(v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal cbor")
	}

	return nil
}

// ContentType implements ISerializer.
func (*CBORSerializer) ContentType() string { return "application/cbor" }
