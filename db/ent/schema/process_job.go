package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ProcessJob struct{ ent.Schema }

func (ProcessJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "process_jobs"},
	}
}

func (ProcessJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("status").Default("QUEUED"),
		field.String("model_used").Optional().Nillable(),
		field.Float("confidence").Optional().Nillable(),
		field.JSON("corrections", []string{}).Optional(),
		field.Bool("cache_hit").Default(false),
		field.Bytes("raw_output").Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ProcessJob) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE document (FK: process_jobs.document_id)
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Required().
			Unique(),
	}
}
