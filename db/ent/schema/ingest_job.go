package schema

import (
	"encoding/json"
	"time"

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

var jobPhases = []string{
	string(constants.JobPhasePending),
	string(constants.JobPhaseScanning),
	string(constants.JobPhaseScanFailed),
	string(constants.JobPhaseScanComplete),
	string(constants.JobPhaseExtracting),
	string(constants.JobPhaseExtractFailed),
	string(constants.JobPhaseComplete),
	string(constants.JobPhaseCancelled),
}

type IngestJob struct{ ent.Schema }

func (IngestJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingest_jobs"},
	}
}

func (IngestJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("phase").Default(string(constants.JobPhasePending)).
			Validate(utils.EnumValidator(jobPhases...)),
		field.String("folder").NotEmpty(),
		field.String("criteria").Optional(),
		// last processed message uid; resumption starts after it
		field.Uint32("cursor").Default(0),
		field.Uint32("scanned").Default(0),
		field.Uint32("matched").Default(0),
		field.Uint32("extracted").Default(0),
		field.Uint32("duplicates").Default(0),
		field.Uint32("failed").Default(0),
		field.JSON("error_log", json.RawMessage{}).Optional(),
		field.Bool("cancelled").Default(false),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (IngestJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("jobs").
			Field("profile_id").
			Required().
			Unique(),
		edge.To("batches", JobBatch.Type),
	}
}

func (IngestJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "phase", "started_at"),
	}
}
