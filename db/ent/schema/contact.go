package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"time"

	"github.com/google/uuid"
)

type Contact struct{ ent.Schema }

func (Contact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contact_info"},
	}
}

func (Contact) Fields() []ent.Field {
	return []ent.Field{
		// surrogate key; full_name stays a mutable display field
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("full_name").Optional(),
		field.String("organization").Optional(),
		field.String("job_title").Optional(),
		field.String("contact_number").Optional(),
		field.String("business_email").Optional(),
		field.String("business_url").Optional(),
		field.String("street_address").Optional(),
		field.String("location_city").Optional(),
		field.String("location_state").Optional(),
		field.String("postal_code").Optional(),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contact -> MANY scans that produced or updated it
		edge.To("scans", ScanJob.Type),
	}
}

func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		// name-keyed lookups from the legacy review workflow
		index.Fields("full_name"),
		index.Fields("created_at"),
	}
}
