package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestWireCodec_RoundTrip(t *testing.T) {
	codec := wireCodec{}
	in := &getAllCategoriesResponse{Categories: []*category{
		{CategoryID: "1", Name: "Phones"},
		{CategoryID: "2"},
	}}

	data, err := codec.Marshal(in)
	require.NoError(t, err)

	out := &getAllCategoriesResponse{}
	require.NoError(t, codec.Unmarshal(data, out))
	assert.Equal(t, in, out)
}

func TestWireCodec_UnsupportedType(t *testing.T) {
	codec := wireCodec{}

	_, err := codec.Marshal("not a message")
	assert.Error(t, err)

	assert.Error(t, codec.Unmarshal(nil, &struct{}{}))
	assert.Equal(t, "proto", codec.Name())
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 150)
	b = appendString(b, 3, "janedoe")
	b = protowire.AppendTag(b, 7, protowire.BytesType)
	b = protowire.AppendString(b, "future field")
	b = appendString(b, 1, "42")

	got := &loginUserResponse{}
	require.NoError(t, got.unmarshalWire(b))

	assert.Equal(t, &loginUserResponse{UserID: "42", UserName: "janedoe"}, got)
}

func TestUnmarshal_WrongWireTypeIsSkipped(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	got := &registerUserResponse{}
	require.NoError(t, got.unmarshalWire(b))
	assert.Empty(t, got.UserName)
}

func TestUnmarshal_Truncated(t *testing.T) {
	b := appendString(nil, 1, "jane@example.com")

	err := (&loginUserRequest{}).unmarshalWire(b[:len(b)-3])

	assert.Error(t, err)
}

func TestMarshal_OmitsEmptyStrings(t *testing.T) {
	assert.Empty(t, (&registerUserRequest{}).marshalWire())
	assert.Empty(t, (&getAllCategoriesRequest{}).marshalWire())
}

func TestRegisterUserRequest_FieldNumbers(t *testing.T) {
	b := (&registerUserRequest{
		FullName:     "a",
		UserName:     "b",
		EmailAddress: "c",
		PhoneNumber:  "d",
		Password:     "e",
	}).marshalWire()

	var nums []protowire.Number
	var values []string
	for len(b) > 0 {
		num, _, n := protowire.ConsumeTag(b)
		require.Positive(t, n)
		b = b[n:]
		v, m := protowire.ConsumeString(b)
		require.Positive(t, m)
		b = b[m:]
		nums = append(nums, num)
		values = append(values, v)
	}

	assert.Equal(t, []protowire.Number{1, 2, 3, 4, 5}, nums)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, values)
}
