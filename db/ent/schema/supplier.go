package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Supplier struct{ ent.Schema }

func (Supplier) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "suppliers"},
	}
}

func (Supplier) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("tenant_id", uuid.UUID{}),
		field.String("name").NotEmpty().MaxLen(255),
		field.String("normalized_name").NotEmpty().MaxLen(255),
		field.String("contact_email").Optional().Nillable(),
		field.String("contact_phone").Optional().Nillable(),
		field.String("contact_address").Optional().Nillable(),
		field.String("tax_id").Optional().Nillable(),
		field.Float("total_spend").
			Default(0).Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("performance_rating").
			Default(2.5).Min(0).Max(5),
		field.Enum("status").
			Values("active", "inactive", "suspended").
			Default("active"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Supplier) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE supplier -> MANY documents
		edge.To("documents", Document.Type),
	}
}

func (Supplier) Indexes() []ent.Index {
	return []ent.Index{
		// one supplier row per (tenant, normalized name); concurrent
		// create-on-miss resolves through conflict-then-reread
		index.Fields("tenant_id", "normalized_name").Unique(),
	}
}
