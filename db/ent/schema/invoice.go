package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define composite unique indexes
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("blob_id", uuid.UUID{}),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("invoice_type").NotEmpty().
			Validate(utils.EnumValidator(constants.InvoiceTypesAsStrings()...)),
		field.JSON("canonical_fields", json.RawMessage{}),
		field.JSON("raw_engine_output", json.RawMessage{}).Optional(),
		field.JSON("confidence_scores", json.RawMessage{}).Optional(),
		field.JSON("validation", json.RawMessage{}).Optional(),
		field.String("source").NotEmpty().
			Validate(utils.EnumValidator(string(constants.SourceUpload), string(constants.SourceMailbox))),
		field.String("lifecycle_state").Default(string(constants.LifecycleActive)).
			Validate(utils.EnumValidator(string(constants.LifecycleActive), string(constants.LifecycleSoftDeleted))),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE profile
		edge.From("profile", Profile.Type).
			Ref("invoices").
			Field("profile_id").
			Required().
			Unique(),
		// MANY invoices -> ONE blob
		edge.From("blob", ContentBlob.Type).
			Ref("invoices").
			Field("blob_id").
			Required().
			Unique(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "content_hash").Unique(),
		index.Fields("profile_id", "lifecycle_state", "created_at"),
	}
}
