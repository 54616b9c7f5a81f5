// Code generated by ent, DO NOT EDIT.

package ingestjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldProfileID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldPhase, v))
}

// Folder applies equality check predicate on the "folder" field. It's identical to FolderEQ.
func Folder(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldFolder, v))
}

// Criteria applies equality check predicate on the "criteria" field. It's identical to CriteriaEQ.
func Criteria(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCriteria, v))
}

// Cursor applies equality check predicate on the "cursor" field. It's identical to CursorEQ.
func Cursor(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCursor, v))
}

// Scanned applies equality check predicate on the "scanned" field. It's identical to ScannedEQ.
func Scanned(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldScanned, v))
}

// Matched applies equality check predicate on the "matched" field. It's identical to MatchedEQ.
func Matched(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldMatched, v))
}

// Extracted applies equality check predicate on the "extracted" field. It's identical to ExtractedEQ.
func Extracted(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldExtracted, v))
}

// Duplicates applies equality check predicate on the "duplicates" field. It's identical to DuplicatesEQ.
func Duplicates(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldDuplicates, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldFailed, v))
}

// Cancelled applies equality check predicate on the "cancelled" field. It's identical to CancelledEQ.
func Cancelled(v bool) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCancelled, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldFinishedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldProfileID, vs...))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContainsFold(FieldPhase, v))
}

// FolderEQ applies the EQ predicate on the "folder" field.
func FolderEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldFolder, v))
}

// FolderNEQ applies the NEQ predicate on the "folder" field.
func FolderNEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldFolder, v))
}

// FolderIn applies the In predicate on the "folder" field.
func FolderIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldFolder, vs...))
}

// FolderNotIn applies the NotIn predicate on the "folder" field.
func FolderNotIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldFolder, vs...))
}

// FolderGT applies the GT predicate on the "folder" field.
func FolderGT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldFolder, v))
}

// FolderGTE applies the GTE predicate on the "folder" field.
func FolderGTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldFolder, v))
}

// FolderLT applies the LT predicate on the "folder" field.
func FolderLT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldFolder, v))
}

// FolderLTE applies the LTE predicate on the "folder" field.
func FolderLTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldFolder, v))
}

// FolderContains applies the Contains predicate on the "folder" field.
func FolderContains(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContains(FieldFolder, v))
}

// FolderHasPrefix applies the HasPrefix predicate on the "folder" field.
func FolderHasPrefix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasPrefix(FieldFolder, v))
}

// FolderHasSuffix applies the HasSuffix predicate on the "folder" field.
func FolderHasSuffix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasSuffix(FieldFolder, v))
}

// FolderEqualFold applies the EqualFold predicate on the "folder" field.
func FolderEqualFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEqualFold(FieldFolder, v))
}

// FolderContainsFold applies the ContainsFold predicate on the "folder" field.
func FolderContainsFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContainsFold(FieldFolder, v))
}

// CriteriaEQ applies the EQ predicate on the "criteria" field.
func CriteriaEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCriteria, v))
}

// CriteriaNEQ applies the NEQ predicate on the "criteria" field.
func CriteriaNEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldCriteria, v))
}

// CriteriaIn applies the In predicate on the "criteria" field.
func CriteriaIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldCriteria, vs...))
}

// CriteriaNotIn applies the NotIn predicate on the "criteria" field.
func CriteriaNotIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldCriteria, vs...))
}

// CriteriaGT applies the GT predicate on the "criteria" field.
func CriteriaGT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldCriteria, v))
}

// CriteriaGTE applies the GTE predicate on the "criteria" field.
func CriteriaGTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldCriteria, v))
}

// CriteriaLT applies the LT predicate on the "criteria" field.
func CriteriaLT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldCriteria, v))
}

// CriteriaLTE applies the LTE predicate on the "criteria" field.
func CriteriaLTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldCriteria, v))
}

// CriteriaContains applies the Contains predicate on the "criteria" field.
func CriteriaContains(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContains(FieldCriteria, v))
}

// CriteriaHasPrefix applies the HasPrefix predicate on the "criteria" field.
func CriteriaHasPrefix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasPrefix(FieldCriteria, v))
}

// CriteriaHasSuffix applies the HasSuffix predicate on the "criteria" field.
func CriteriaHasSuffix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasSuffix(FieldCriteria, v))
}

// CriteriaIsNil applies the IsNil predicate on the "criteria" field.
func CriteriaIsNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIsNull(FieldCriteria))
}

// CriteriaNotNil applies the NotNil predicate on the "criteria" field.
func CriteriaNotNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotNull(FieldCriteria))
}

// CriteriaEqualFold applies the EqualFold predicate on the "criteria" field.
func CriteriaEqualFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEqualFold(FieldCriteria, v))
}

// CriteriaContainsFold applies the ContainsFold predicate on the "criteria" field.
func CriteriaContainsFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContainsFold(FieldCriteria, v))
}

// CursorEQ applies the EQ predicate on the "cursor" field.
func CursorEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCursor, v))
}

// CursorNEQ applies the NEQ predicate on the "cursor" field.
func CursorNEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldCursor, v))
}

// CursorIn applies the In predicate on the "cursor" field.
func CursorIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldCursor, vs...))
}

// CursorNotIn applies the NotIn predicate on the "cursor" field.
func CursorNotIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldCursor, vs...))
}

// CursorGT applies the GT predicate on the "cursor" field.
func CursorGT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldCursor, v))
}

// CursorGTE applies the GTE predicate on the "cursor" field.
func CursorGTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldCursor, v))
}

// CursorLT applies the LT predicate on the "cursor" field.
func CursorLT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldCursor, v))
}

// CursorLTE applies the LTE predicate on the "cursor" field.
func CursorLTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldCursor, v))
}

// ScannedEQ applies the EQ predicate on the "scanned" field.
func ScannedEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldScanned, v))
}

// ScannedNEQ applies the NEQ predicate on the "scanned" field.
func ScannedNEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldScanned, v))
}

// ScannedIn applies the In predicate on the "scanned" field.
func ScannedIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldScanned, vs...))
}

// ScannedNotIn applies the NotIn predicate on the "scanned" field.
func ScannedNotIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldScanned, vs...))
}

// ScannedGT applies the GT predicate on the "scanned" field.
func ScannedGT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldScanned, v))
}

// ScannedGTE applies the GTE predicate on the "scanned" field.
func ScannedGTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldScanned, v))
}

// ScannedLT applies the LT predicate on the "scanned" field.
func ScannedLT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldScanned, v))
}

// ScannedLTE applies the LTE predicate on the "scanned" field.
func ScannedLTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldScanned, v))
}

// MatchedEQ applies the EQ predicate on the "matched" field.
func MatchedEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldMatched, v))
}

// MatchedNEQ applies the NEQ predicate on the "matched" field.
func MatchedNEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldMatched, v))
}

// MatchedIn applies the In predicate on the "matched" field.
func MatchedIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldMatched, vs...))
}

// MatchedNotIn applies the NotIn predicate on the "matched" field.
func MatchedNotIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldMatched, vs...))
}

// MatchedGT applies the GT predicate on the "matched" field.
func MatchedGT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldMatched, v))
}

// MatchedGTE applies the GTE predicate on the "matched" field.
func MatchedGTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldMatched, v))
}

// MatchedLT applies the LT predicate on the "matched" field.
func MatchedLT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldMatched, v))
}

// MatchedLTE applies the LTE predicate on the "matched" field.
func MatchedLTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldMatched, v))
}

// ExtractedEQ applies the EQ predicate on the "extracted" field.
func ExtractedEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldExtracted, v))
}

// ExtractedNEQ applies the NEQ predicate on the "extracted" field.
func ExtractedNEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldExtracted, v))
}

// ExtractedIn applies the In predicate on the "extracted" field.
func ExtractedIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldExtracted, vs...))
}

// ExtractedNotIn applies the NotIn predicate on the "extracted" field.
func ExtractedNotIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldExtracted, vs...))
}

// ExtractedGT applies the GT predicate on the "extracted" field.
func ExtractedGT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldExtracted, v))
}

// ExtractedGTE applies the GTE predicate on the "extracted" field.
func ExtractedGTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldExtracted, v))
}

// ExtractedLT applies the LT predicate on the "extracted" field.
func ExtractedLT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldExtracted, v))
}

// ExtractedLTE applies the LTE predicate on the "extracted" field.
func ExtractedLTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldExtracted, v))
}

// DuplicatesEQ applies the EQ predicate on the "duplicates" field.
func DuplicatesEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldDuplicates, v))
}

// DuplicatesNEQ applies the NEQ predicate on the "duplicates" field.
func DuplicatesNEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldDuplicates, v))
}

// DuplicatesIn applies the In predicate on the "duplicates" field.
func DuplicatesIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldDuplicates, vs...))
}

// DuplicatesNotIn applies the NotIn predicate on the "duplicates" field.
func DuplicatesNotIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldDuplicates, vs...))
}

// DuplicatesGT applies the GT predicate on the "duplicates" field.
func DuplicatesGT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldDuplicates, v))
}

// DuplicatesGTE applies the GTE predicate on the "duplicates" field.
func DuplicatesGTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldDuplicates, v))
}

// DuplicatesLT applies the LT predicate on the "duplicates" field.
func DuplicatesLT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldDuplicates, v))
}

// DuplicatesLTE applies the LTE predicate on the "duplicates" field.
func DuplicatesLTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldDuplicates, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v uint32) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldFailed, v))
}

// ErrorLogIsNil applies the IsNil predicate on the "error_log" field.
func ErrorLogIsNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIsNull(FieldErrorLog))
}

// ErrorLogNotNil applies the NotNil predicate on the "error_log" field.
func ErrorLogNotNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotNull(FieldErrorLog))
}

// CancelledEQ applies the EQ predicate on the "cancelled" field.
func CancelledEQ(v bool) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCancelled, v))
}

// CancelledNEQ applies the NEQ predicate on the "cancelled" field.
func CancelledNEQ(v bool) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldCancelled, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotNull(FieldFinishedAt))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.IngestJob {
	return predicate.IngestJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.IngestJob {
	return predicate.IngestJob(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBatches applies the HasEdge predicate on the "batches" edge.
func HasBatches() predicate.IngestJob {
	return predicate.IngestJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchesWith applies the HasEdge predicate on the "batches" edge with a given conditions (other predicates).
func HasBatchesWith(preds ...predicate.JobBatch) predicate.IngestJob {
	return predicate.IngestJob(func(s *sql.Selector) {
		step := newBatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestJob) predicate.IngestJob {
	return predicate.IngestJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestJob) predicate.IngestJob {
	return predicate.IngestJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestJob) predicate.IngestJob {
	return predicate.IngestJob(sql.NotPredicates(p))
}
