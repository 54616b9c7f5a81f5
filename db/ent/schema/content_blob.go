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

type ContentBlob struct{ ent.Schema }

func (ContentBlob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "content_blobs"},
	}
}

func (ContentBlob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite unique index
		field.UUID("profile_id", uuid.UUID{}),
		field.Bytes("hash").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int64("byte_size").NonNegative().Immutable(),
		field.String("storage_ref").NotEmpty().Immutable(),
		field.Time("first_seen_at").Default(time.Now).Immutable(),
	}
}

func (ContentBlob) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY blobs -> ONE profile
		edge.From("profile", Profile.Type).
			Ref("blobs").
			Field("profile_id").
			Required().
			Unique(),
		// ONE blob -> MANY invoices (in practice at most one per owner)
		edge.To("invoices", Invoice.Type),
	}
}

func (ContentBlob) Indexes() []ent.Index {
	return []ent.Index{
		// the at-most-one guarantee lives here, not in application code
		index.Fields("profile_id", "hash").Unique(),
	}
}
