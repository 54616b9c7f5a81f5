package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/db/ent/schema/utils"
)

type JobBatch struct{ ent.Schema }

func (JobBatch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_batches"},
	}
}

func (JobBatch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("seq").NonNegative(),
		field.JSON("uids", json.RawMessage{}),
		field.String("status").Default(string(constants.BatchStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.BatchStatusPending),
				string(constants.BatchStatusRunning),
				string(constants.BatchStatusDone),
				string(constants.BatchStatusFailed),
			)),
		field.Uint32("extracted").Default(0),
		field.Uint32("duplicates").Default(0),
		field.Uint32("failed").Default(0),
	}
}

func (JobBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", IngestJob.Type).
			Ref("batches").
			Field("job_id").
			Required().
			Unique(),
	}
}

func (JobBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "seq").Unique(),
		index.Fields("job_id", "status"),
	}
}
