package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec encodes one message type with its static schema, without any
// framing. It is used when no schema registry is configured.
type AvroCodec struct {
	prototype reflect.Type
	schema    avro.Schema
}

func NewAvroCodec(prototype any) (*AvroCodec, error) {
	t, entry, err := lookupSchema(prototype)
	if err != nil {
		return nil, err
	}

	schema, err := avro.Parse(entry.text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s schema: %w", entry.subject, err)
	}

	return &AvroCodec{prototype: t, schema: schema}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	if baseType(value) != c.prototype {
		return nil, fmt.Errorf("unexpected message type %T for %v codec", value, c.prototype)
	}

	data, err := avro.Marshal(c.schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to avro: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to a new prototype value.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	instance := reflect.New(c.prototype).Interface()
	if err := avro.Unmarshal(c.schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from avro: %w", err)
	}

	return instance, nil
}
