package adapter

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// codecName replaces the default "proto" codec on the gateway's own
// connections only. It is never registered globally.
const codecName = "proto"

// wireMessage is implemented by every request and reply type exchanged
// with the backends. Messages encode themselves in the protobuf wire format.
type wireMessage interface {
	marshalWire() []byte
	unmarshalWire(b []byte) error
}

// wireCodec is a gRPC codec for wireMessage values.
type wireCodec struct{}

// Marshal returns the protobuf encoding of v.
func (wireCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("codec: unsupported message type %T", v)
	}
	return msg.marshalWire(), nil
}

// Unmarshal decodes data into v.
func (wireCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("codec: unsupported message type %T", v)
	}
	return msg.unmarshalWire(data)
}

// Name returns the codec name.
func (wireCodec) Name() string {
	return codecName
}

// appendString appends a string field; proto3 omits empty values.
func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.marshalWire())
}

// fieldFunc consumes the value of field num from b and returns the number of
// bytes read. Returning 0 leaves the field to be skipped as unknown.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// consumeFields walks every field of a message and skips those fn does not
// consume.
func consumeFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		b = b[m:]
	}
	return nil
}

// consumeString reads a length-delimited string into dst. Fields with an
// unexpected wire type are left unconsumed.
func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

// consumeMessage reads a length-delimited embedded message into dst.
func consumeMessage(typ protowire.Type, b []byte, dst wireMessage) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := dst.unmarshalWire(v); err != nil {
		return 0, err
	}
	return n, nil
}
