package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"easyrent-server/internal/infra/cache"

	"github.com/hamba/avro/v2"
	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_magicByte             = 0
	_headerSize            = 5
	_defaultSchemaCacheTTL = 5 * time.Minute
)

// ConfluentAvroCodec writes the Confluent wire format: a zero magic byte, the
// big endian schema id and the avro binary body.
type ConfluentAvroCodec struct {
	prototype      reflect.Type
	subject        string
	canonical      string
	writer         avro.Schema
	schemaRegistry SchemaRegistry
	schemaCache    cache.Cache
}

func NewConfluentAvroCodec(prototype any, schemaRegistry SchemaRegistry) (*ConfluentAvroCodec, error) {
	t, entry, err := lookupSchema(prototype)
	if err != nil {
		return nil, err
	}

	codec, err := goavro.NewCodec(entry.text)
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", entry.subject, err)
	}

	writer, err := avro.Parse(entry.text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s schema: %w", entry.subject, err)
	}

	schemaCache, err := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20,
		NumCounters: 1e4,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	return &ConfluentAvroCodec{
		prototype:      t,
		subject:        entry.subject + "-value",
		canonical:      codec.CanonicalSchema(),
		writer:         writer,
		schemaRegistry: schemaRegistry,
		schemaCache:    schemaCache,
	}, nil
}

func (c *ConfluentAvroCodec) schemaID(ctx context.Context) (int, error) {
	value, err := c.schemaCache.GetOrSet(ctx, "subject:"+c.subject, _defaultSchemaCacheTTL, func() (any, error) {
		latest, err := c.schemaRegistry.GetLatestSchema(c.subject)
		if err == nil && latest != nil && latest.Schema() == c.canonical {
			return latest.ID(), nil
		}

		created, err := c.schemaRegistry.CreateSchema(c.subject, c.canonical, srclient.Avro)
		if err != nil {
			return nil, fmt.Errorf("registering schema: %w", err)
		}
		return created.ID(), nil
	})
	if err != nil {
		return 0, err
	}

	id := value.(int)
	c.schemaCache.Set(ctx, "id:"+strconv.Itoa(id), c.writer, _defaultSchemaCacheTTL)

	return id, nil
}

func (c *ConfluentAvroCodec) readerSchema(ctx context.Context, id int) (avro.Schema, error) {
	value, err := c.schemaCache.GetOrSet(ctx, "id:"+strconv.Itoa(id), _defaultSchemaCacheTTL, func() (any, error) {
		registered, err := c.schemaRegistry.GetSchema(id)
		if err != nil {
			return nil, fmt.Errorf("fetching schema %d: %w", id, err)
		}
		return avro.Parse(registered.Schema())
	})
	if err != nil {
		return nil, err
	}

	return value.(avro.Schema), nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	if baseType(value) != c.prototype {
		return nil, fmt.Errorf("unexpected message type %T for %v codec", value, c.prototype)
	}

	id, err := c.schemaID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("getting schema id: %w", err)
	}

	body, err := avro.Marshal(c.writer, value)
	if err != nil {
		return nil, fmt.Errorf("encoding to avro: %w", err)
	}

	result := make([]byte, _headerSize+len(body))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_headerSize], uint32(id))
	copy(result[_headerSize:], body)

	return result, nil
}

func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _headerSize {
		return nil, fmt.Errorf("invalid avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}

	id := int(binary.BigEndian.Uint32(data[1:_headerSize]))
	schema, err := c.readerSchema(context.Background(), id)
	if err != nil {
		return nil, err
	}

	instance := reflect.New(c.prototype).Interface()
	if err := avro.Unmarshal(schema, data[_headerSize:], instance); err != nil {
		return nil, fmt.Errorf("decoding avro data: %w", err)
	}

	return instance, nil
}
