package avro

import "github.com/riferrei/srclient"

// SchemaRegistry is the part of the Confluent registry client the codec needs.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

func NewSchemaRegistryClient(url string) SchemaRegistry {
	return srclient.CreateSchemaRegistryClient(url)
}
