// Code generated by ent, DO NOT EDIT.

package contentblob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldProfileID, v))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v []byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldHash, v))
}

// ByteSize applies equality check predicate on the "byte_size" field. It's identical to ByteSizeEQ.
func ByteSize(v int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldByteSize, v))
}

// StorageRef applies equality check predicate on the "storage_ref" field. It's identical to StorageRefEQ.
func StorageRef(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldStorageRef, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldFirstSeenAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNotIn(FieldProfileID, vs...))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v []byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v []byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...[]byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...[]byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v []byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v []byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v []byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v []byte) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLTE(FieldHash, v))
}

// ByteSizeEQ applies the EQ predicate on the "byte_size" field.
func ByteSizeEQ(v int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldByteSize, v))
}

// ByteSizeNEQ applies the NEQ predicate on the "byte_size" field.
func ByteSizeNEQ(v int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNEQ(FieldByteSize, v))
}

// ByteSizeIn applies the In predicate on the "byte_size" field.
func ByteSizeIn(vs ...int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldIn(FieldByteSize, vs...))
}

// ByteSizeNotIn applies the NotIn predicate on the "byte_size" field.
func ByteSizeNotIn(vs ...int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNotIn(FieldByteSize, vs...))
}

// ByteSizeGT applies the GT predicate on the "byte_size" field.
func ByteSizeGT(v int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGT(FieldByteSize, v))
}

// ByteSizeGTE applies the GTE predicate on the "byte_size" field.
func ByteSizeGTE(v int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGTE(FieldByteSize, v))
}

// ByteSizeLT applies the LT predicate on the "byte_size" field.
func ByteSizeLT(v int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLT(FieldByteSize, v))
}

// ByteSizeLTE applies the LTE predicate on the "byte_size" field.
func ByteSizeLTE(v int64) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLTE(FieldByteSize, v))
}

// StorageRefEQ applies the EQ predicate on the "storage_ref" field.
func StorageRefEQ(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldStorageRef, v))
}

// StorageRefNEQ applies the NEQ predicate on the "storage_ref" field.
func StorageRefNEQ(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNEQ(FieldStorageRef, v))
}

// StorageRefIn applies the In predicate on the "storage_ref" field.
func StorageRefIn(vs ...string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldIn(FieldStorageRef, vs...))
}

// StorageRefNotIn applies the NotIn predicate on the "storage_ref" field.
func StorageRefNotIn(vs ...string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNotIn(FieldStorageRef, vs...))
}

// StorageRefGT applies the GT predicate on the "storage_ref" field.
func StorageRefGT(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGT(FieldStorageRef, v))
}

// StorageRefGTE applies the GTE predicate on the "storage_ref" field.
func StorageRefGTE(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGTE(FieldStorageRef, v))
}

// StorageRefLT applies the LT predicate on the "storage_ref" field.
func StorageRefLT(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLT(FieldStorageRef, v))
}

// StorageRefLTE applies the LTE predicate on the "storage_ref" field.
func StorageRefLTE(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLTE(FieldStorageRef, v))
}

// StorageRefContains applies the Contains predicate on the "storage_ref" field.
func StorageRefContains(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldContains(FieldStorageRef, v))
}

// StorageRefHasPrefix applies the HasPrefix predicate on the "storage_ref" field.
func StorageRefHasPrefix(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldHasPrefix(FieldStorageRef, v))
}

// StorageRefHasSuffix applies the HasSuffix predicate on the "storage_ref" field.
func StorageRefHasSuffix(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldHasSuffix(FieldStorageRef, v))
}

// StorageRefEqualFold applies the EqualFold predicate on the "storage_ref" field.
func StorageRefEqualFold(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEqualFold(FieldStorageRef, v))
}

// StorageRefContainsFold applies the ContainsFold predicate on the "storage_ref" field.
func StorageRefContainsFold(v string) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldContainsFold(FieldStorageRef, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.ContentBlob {
	return predicate.ContentBlob(sql.FieldLTE(FieldFirstSeenAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.ContentBlob {
	return predicate.ContentBlob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.ContentBlob {
	return predicate.ContentBlob(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvoices applies the HasEdge predicate on the "invoices" edge.
func HasInvoices() predicate.ContentBlob {
	return predicate.ContentBlob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvoicesTable, InvoicesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoicesWith applies the HasEdge predicate on the "invoices" edge with a given conditions (other predicates).
func HasInvoicesWith(preds ...predicate.Invoice) predicate.ContentBlob {
	return predicate.ContentBlob(func(s *sql.Selector) {
		step := newInvoicesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContentBlob) predicate.ContentBlob {
	return predicate.ContentBlob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContentBlob) predicate.ContentBlob {
	return predicate.ContentBlob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContentBlob) predicate.ContentBlob {
	return predicate.ContentBlob(sql.NotPredicates(p))
}
