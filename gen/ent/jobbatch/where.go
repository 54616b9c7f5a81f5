// Code generated by ent, DO NOT EDIT.

package jobbatch

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldJobID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldSeq, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldStatus, v))
}

// Extracted applies equality check predicate on the "extracted" field. It's identical to ExtractedEQ.
func Extracted(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldExtracted, v))
}

// Duplicates applies equality check predicate on the "duplicates" field. It's identical to DuplicatesEQ.
func Duplicates(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldDuplicates, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldFailed, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNotIn(FieldJobID, vs...))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLTE(FieldSeq, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldContainsFold(FieldStatus, v))
}

// ExtractedEQ applies the EQ predicate on the "extracted" field.
func ExtractedEQ(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldExtracted, v))
}

// ExtractedNEQ applies the NEQ predicate on the "extracted" field.
func ExtractedNEQ(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNEQ(FieldExtracted, v))
}

// ExtractedIn applies the In predicate on the "extracted" field.
func ExtractedIn(vs ...uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldIn(FieldExtracted, vs...))
}

// ExtractedNotIn applies the NotIn predicate on the "extracted" field.
func ExtractedNotIn(vs ...uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNotIn(FieldExtracted, vs...))
}

// ExtractedGT applies the GT predicate on the "extracted" field.
func ExtractedGT(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGT(FieldExtracted, v))
}

// ExtractedGTE applies the GTE predicate on the "extracted" field.
func ExtractedGTE(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGTE(FieldExtracted, v))
}

// ExtractedLT applies the LT predicate on the "extracted" field.
func ExtractedLT(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLT(FieldExtracted, v))
}

// ExtractedLTE applies the LTE predicate on the "extracted" field.
func ExtractedLTE(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLTE(FieldExtracted, v))
}

// DuplicatesEQ applies the EQ predicate on the "duplicates" field.
func DuplicatesEQ(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldDuplicates, v))
}

// DuplicatesNEQ applies the NEQ predicate on the "duplicates" field.
func DuplicatesNEQ(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNEQ(FieldDuplicates, v))
}

// DuplicatesIn applies the In predicate on the "duplicates" field.
func DuplicatesIn(vs ...uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldIn(FieldDuplicates, vs...))
}

// DuplicatesNotIn applies the NotIn predicate on the "duplicates" field.
func DuplicatesNotIn(vs ...uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNotIn(FieldDuplicates, vs...))
}

// DuplicatesGT applies the GT predicate on the "duplicates" field.
func DuplicatesGT(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGT(FieldDuplicates, v))
}

// DuplicatesGTE applies the GTE predicate on the "duplicates" field.
func DuplicatesGTE(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGTE(FieldDuplicates, v))
}

// DuplicatesLT applies the LT predicate on the "duplicates" field.
func DuplicatesLT(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLT(FieldDuplicates, v))
}

// DuplicatesLTE applies the LTE predicate on the "duplicates" field.
func DuplicatesLTE(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLTE(FieldDuplicates, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v uint32) predicate.JobBatch {
	return predicate.JobBatch(sql.FieldLTE(FieldFailed, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobBatch {
	return predicate.JobBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.IngestJob) predicate.JobBatch {
	return predicate.JobBatch(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobBatch) predicate.JobBatch {
	return predicate.JobBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobBatch) predicate.JobBatch {
	return predicate.JobBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobBatch) predicate.JobBatch {
	return predicate.JobBatch(sql.NotPredicates(p))
}
