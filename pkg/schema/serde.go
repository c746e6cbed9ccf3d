package schema

import (
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
)

var (
	ErrTruncatedData  = errors.New("truncated data")
	ErrUnknownVersion = errors.New("unknown schema version")
)

// Serde encodes snapshot records to a versioned avro binary form. The first
// byte of the encoded blob is the schema version, so stale blobs written by
// an older build fail decoding loudly instead of misparsing.
type Serde struct {
	version    byte
	avroSchema avro.Schema
}

func newSerde(op string, version byte, schemaText string) (Serde, error) {
	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return Serde{}, fmt.Errorf("%s: %w", op, err)
	}
	return Serde{version: version, avroSchema: avroSchema}, nil
}

func (s Serde) Encode(v any) ([]byte, error) {
	data, err := avro.Marshal(s.avroSchema, v)
	if err != nil {
		return nil, err
	}
	blob := make([]byte, 0, len(data)+1)
	blob = append(blob, s.version)
	return append(blob, data...), nil
}

func (s Serde) Decode(data []byte, v any) error {
	if len(data) < 1 {
		return ErrTruncatedData
	}
	if data[0] != s.version {
		return fmt.Errorf("version %d: %w", data[0], ErrUnknownVersion)
	}
	return avro.Unmarshal(s.avroSchema, data[1:], v)
}

func NewSerdeCartSnapshotV1() (Serde, error) {
	const op = "NewSerdeCartSnapshotV1"
	return newSerde(op, 1, CartSnapshotSchemaTextV1)
}

func NewSerdeWishlistSnapshotV1() (Serde, error) {
	const op = "NewSerdeWishlistSnapshotV1"
	return newSerde(op, 1, WishlistSnapshotSchemaTextV1)
}

func NewSerdeUserV1() (Serde, error) {
	const op = "NewSerdeUserV1"
	return newSerde(op, 1, UserSchemaTextV1)
}

func NewSerdeRecentSearchesV1() (Serde, error) {
	const op = "NewSerdeRecentSearchesV1"
	return newSerde(op, 1, RecentSearchesSchemaTextV1)
}
