package avro

import (
	"fmt"
	"reflect"
)

const (
	propertySchema = `{
		"type": "record",
		"name": "Property",
		"namespace": "easyrent",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "owner_id", "type": "string"},
			{"name": "property_type", "type": "string"},
			{"name": "title", "type": "string"},
			{"name": "city", "type": "string"},
			{"name": "country", "type": "string"},
			{"name": "total_area", "type": "double"},
			{"name": "rent_amount", "type": "double"},
			{"name": "photo_count", "type": "int"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}], "default": null}
		]
	}`

	inviteSchema = `{
		"type": "record",
		"name": "Invite",
		"namespace": "easyrent",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "landlord_id", "type": "string"},
			{"name": "property_id", "type": "string"},
			{"name": "email", "type": "string"},
			{"name": "first_name", "type": "string"},
			{"name": "last_name", "type": "string"},
			{"name": "status", "type": "string"},
			{"name": "lease_start", "type": "string"},
			{"name": "lease_end", "type": "string"},
			{"name": "rent_amount", "type": "double"},
			{"name": "deposit_amount", "type": "double"},
			{"name": "email_sent", "type": "boolean"},
			{"name": "expires_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	onboardingCompletedSchema = `{
		"type": "record",
		"name": "OnboardingCompleted",
		"namespace": "easyrent",
		"fields": [
			{"name": "invite_id", "type": "string"},
			{"name": "tenant_profile_id", "type": "string"},
			{"name": "landlord_id", "type": "string"},
			{"name": "property_id", "type": "string"},
			{"name": "tenant_email", "type": "string"},
			{"name": "tenant_name", "type": "string"},
			{"name": "guarantor_id", "type": ["null", "string"], "default": null},
			{"name": "completed_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	leaseSchema = `{
		"type": "record",
		"name": "Lease",
		"namespace": "easyrent",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "owner_id", "type": "string"},
			{"name": "tenant_id", "type": "string"},
			{"name": "property_id", "type": "string"},
			{"name": "start_date", "type": "string"},
			{"name": "end_date", "type": "string"},
			{"name": "rent_amount", "type": "double"},
			{"name": "deposit_amount", "type": "double"},
			{"name": "payment_due_day", "type": "int"},
			{"name": "status", "type": "string"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	maintenanceRequestSchema = `{
		"type": "record",
		"name": "MaintenanceRequest",
		"namespace": "easyrent",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "owner_id", "type": "string"},
			{"name": "property_id", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "priority", "type": "string"},
			{"name": "status", "type": "string"},
			{"name": "assigned_to", "type": ["null", "string"], "default": null},
			{"name": "estimated_cost", "type": ["null", "double"], "default": null},
			{"name": "actual_cost", "type": ["null", "double"], "default": null},
			{"name": "completion_date", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}], "default": null},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`
)

type schemaEntry struct {
	subject string
	text    string
}

var schemasByType = map[reflect.Type]schemaEntry{
	reflect.TypeOf(AvroProperty{}):            {subject: "properties", text: propertySchema},
	reflect.TypeOf(AvroInvite{}):              {subject: "invites", text: inviteSchema},
	reflect.TypeOf(AvroOnboardingCompleted{}): {subject: "onboarding_completed", text: onboardingCompletedSchema},
	reflect.TypeOf(AvroLease{}):               {subject: "leases", text: leaseSchema},
	reflect.TypeOf(AvroMaintenanceRequest{}):  {subject: "maintenance_requests", text: maintenanceRequestSchema},
}

func baseType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func lookupSchema(v any) (reflect.Type, schemaEntry, error) {
	t := baseType(v)
	entry, ok := schemasByType[t]
	if !ok {
		return nil, schemaEntry{}, fmt.Errorf("no avro schema found for message type: %v", t)
	}
	return t, entry, nil
}
