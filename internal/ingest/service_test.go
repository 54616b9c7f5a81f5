package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/adapters"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/dedup"
	"github.com/billfold/invoice-ingest/internal/detect"
	"github.com/billfold/invoice-ingest/internal/engine"
	"github.com/billfold/invoice-ingest/gen/ent"
	"github.com/billfold/invoice-ingest/internal/entity"
	"github.com/billfold/invoice-ingest/internal/repository"
)

type memBlobRepo struct {
	rows map[string]*entity.ContentBlob
}

func key(profileID uuid.UUID, hash []byte) string {
	return profileID.String() + "|" + hex.EncodeToString(hash)
}

func (m *memBlobRepo) UpsertByHash(_ context.Context, profileID uuid.UUID, hash []byte, size int64, ref string) (*entity.ContentBlob, bool, error) {
	if b, ok := m.rows[key(profileID, hash)]; ok {
		return b, true, nil
	}
	b := &entity.ContentBlob{ID: uuid.New(), ProfileID: profileID, Hash: hash, ByteSize: size, StorageRef: ref}
	m.rows[key(profileID, hash)] = b
	return b, false, nil
}

type memSaver struct{}

func (memSaver) Save(hash []byte, _ []byte) (string, error) { return hex.EncodeToString(hash), nil }

// memInvoices is an in-memory InvoiceRepository honoring the per-owner
// content hash uniqueness.
type memInvoices struct {
	rows map[string]*entity.Invoice
}

func newMemInvoices() *memInvoices {
	return &memInvoices{rows: make(map[string]*entity.Invoice)}
}

func (m *memInvoices) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range m.rows {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memInvoices) FindByProfileAndHash(_ context.Context, profileID uuid.UUID, hash []byte) (*entity.Invoice, error) {
	return m.rows[key(profileID, hash)], nil
}

func (m *memInvoices) Create(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	k := key(req.ProfileID, req.ContentHash)
	if _, ok := m.rows[k]; ok {
		return nil, common.ErrDuplicateContent
	}
	inv := &entity.Invoice{
		ID:               uuid.New(),
		ProfileID:        req.ProfileID,
		ContentHash:      req.ContentHash,
		InvoiceType:      req.InvoiceType,
		CanonicalFields:  req.CanonicalFields,
		RawEngineOutput:  req.RawEngineOutput,
		ConfidenceScores: req.ConfidenceScores,
		Validation:       req.Validation,
		Source:           req.Source,
		LifecycleState:   constants.LifecycleActive,
		CreatedAt:        time.Now(),
	}
	m.rows[k] = inv
	return inv, nil
}

func (m *memInvoices) ReplaceFields(_ context.Context, id uuid.UUID, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	for _, inv := range m.rows {
		if inv.ID == id {
			inv.InvoiceType = req.InvoiceType
			inv.CanonicalFields = req.CanonicalFields
			inv.LifecycleState = constants.LifecycleActive
			inv.DeletedAt = nil
			return inv, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memInvoices) ListInvoices(_ context.Context, profileID uuid.UUID, filter repository.ListInvoicesFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range m.rows {
		if inv.ProfileID != profileID {
			continue
		}
		if !filter.IncludeDeleted && inv.LifecycleState != constants.LifecycleActive {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (m *memInvoices) SoftDelete(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := m.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inv.LifecycleState = constants.LifecycleSoftDeleted
	inv.DeletedAt = &now
	return inv, nil
}

func (m *memInvoices) Restore(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := m.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	inv.LifecycleState = constants.LifecycleActive
	inv.DeletedAt = nil
	return inv, nil
}

func (m *memInvoices) PurgeExpired(context.Context, time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

// stubEngine returns a fixed output and counts calls.
type stubEngine struct {
	out   engine.Output
	err   error
	calls int
}

func (s *stubEngine) Recognize(context.Context, []byte, string) (engine.Output, error) {
	s.calls++
	if s.err != nil {
		return engine.Output{}, s.err
	}
	return s.out, nil
}

func trainOutput() engine.Output {
	return engine.Output{
		TypeTag:    "train_ticket",
		Confidence: 0.93,
		Fields: map[string]any{
			"fare":        "35.50",
			"TrainNumber": "G1024",
		},
		Raw: json.RawMessage(`{"type":"train_ticket"}`),
	}
}

func newTestService(t *testing.T, eng engine.Recognizer, invoices repository.InvoiceRepository, policy dedup.Policy) *Service {
	t.Helper()
	mapping, err := detect.NewMapping(nil, map[string]string{"train_ticket": "TRAIN_TICKET"})
	require.NoError(t, err)
	blobs := &memBlobRepo{rows: make(map[string]*entity.ContentBlob)}
	index := dedup.NewIndex(blobs, invoices.(dedup.InvoiceFinder), memSaver{}, nil)
	return NewService(
		index,
		eng,
		detect.NewDetector(mapping, nil),
		adapters.NewRegistry(adapters.Config{AmountEpsilon: 0.01}, nil),
		invoices,
		policy,
		nil,
	)
}

func TestIngestStoresNormalizedRecord(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{out: trainOutput()}
	svc := newTestService(t, eng, invoices, dedup.PolicySkip)

	profileID := uuid.New()
	content := []byte("ticket bytes")
	res, err := svc.Ingest(context.Background(), profileID, content, "ticket.pdf", constants.SourceMailbox)
	require.NoError(t, err)
	assert.False(t, res.Deduplicated)

	inv := res.Invoice
	assert.Equal(t, constants.TrainTicket, inv.InvoiceType)
	sum := sha256.Sum256(content)
	assert.Equal(t, sum[:], inv.ContentHash)
	assert.Equal(t, constants.SourceMailbox, inv.Source)

	var canonical map[string]any
	require.NoError(t, json.Unmarshal(inv.CanonicalFields, &canonical))
	assert.Equal(t, "35.50", canonical["total_amount"])
	assert.Equal(t, "35.50", canonical["totalAmount"])
	assert.Equal(t, "G1024", canonical["train_number"])
}

func TestIngestSchemaViolationBecomesWarning(t *testing.T) {
	invoices := newMemInvoices()
	out := trainOutput()
	out.Fields["fare"] = "thirty five"
	eng := &stubEngine{out: out}
	svc := newTestService(t, eng, invoices, dedup.PolicySkip)

	res, err := svc.Ingest(context.Background(), uuid.New(), []byte("odd fare"), "t.pdf", constants.SourceMailbox)
	require.NoError(t, err, "schema violations must not block storage")

	var report adapters.ValidationResult
	require.NoError(t, json.Unmarshal(res.Invoice.Validation, &report))
	var reasons []string
	for _, fe := range report.Errors {
		if fe.Field == "canonical" {
			reasons = append(reasons, fe.Reason)
		}
	}
	require.Len(t, reasons, 1, "canonical shape check should report once")
	assert.Contains(t, reasons[0], "schema")
}

func TestIngestDuplicateSkipsEngine(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{out: trainOutput()}
	svc := newTestService(t, eng, invoices, dedup.PolicySkip)

	profileID := uuid.New()
	content := []byte("same bytes")
	first, err := svc.Ingest(context.Background(), profileID, content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)

	second, err := svc.Ingest(context.Background(), profileID, content, "renamed.pdf", constants.SourceUpload)
	require.NoError(t, err)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.Invoice.ID, second.Invoice.ID)
	assert.Equal(t, 1, eng.calls, "duplicate content must not reach the engine")
}

func TestIngestSameBytesDifferentOwners(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{out: trainOutput()}
	svc := newTestService(t, eng, invoices, dedup.PolicySkip)

	content := []byte("shared bytes")
	a, err := svc.Ingest(context.Background(), uuid.New(), content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)
	b, err := svc.Ingest(context.Background(), uuid.New(), content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)

	assert.False(t, b.Deduplicated)
	assert.NotEqual(t, a.Invoice.ID, b.Invoice.ID)
}

func TestIngestSoftDeletedSkipPolicy(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{out: trainOutput()}
	svc := newTestService(t, eng, invoices, dedup.PolicySkip)

	profileID := uuid.New()
	content := []byte("deleted doc")
	first, err := svc.Ingest(context.Background(), profileID, content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)
	_, err = invoices.SoftDelete(context.Background(), first.Invoice.ID)
	require.NoError(t, err)

	res, err := svc.Ingest(context.Background(), profileID, content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)
	assert.True(t, res.Deduplicated)
	assert.Equal(t, constants.LifecycleSoftDeleted, res.Invoice.LifecycleState,
		"skip policy leaves the record deleted")
	assert.Equal(t, 1, eng.calls)
}

func TestIngestSoftDeletedMergePolicyRestores(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{out: trainOutput()}
	svc := newTestService(t, eng, invoices, dedup.PolicyMerge)

	profileID := uuid.New()
	content := []byte("deleted doc")
	first, err := svc.Ingest(context.Background(), profileID, content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)
	_, err = invoices.SoftDelete(context.Background(), first.Invoice.ID)
	require.NoError(t, err)

	res, err := svc.Ingest(context.Background(), profileID, content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)
	assert.Equal(t, constants.LifecycleActive, res.Invoice.LifecycleState)
	assert.Equal(t, first.Invoice.ID, res.Invoice.ID)
	assert.Equal(t, 1, eng.calls, "merge restores without re-extraction")
}

func TestIngestSoftDeletedReplacePolicyReextracts(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{out: trainOutput()}
	svc := newTestService(t, eng, invoices, dedup.PolicyReplace)

	profileID := uuid.New()
	content := []byte("deleted doc")
	first, err := svc.Ingest(context.Background(), profileID, content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)
	_, err = invoices.SoftDelete(context.Background(), first.Invoice.ID)
	require.NoError(t, err)

	res, err := svc.Ingest(context.Background(), profileID, content, "a.pdf", constants.SourceUpload)
	require.NoError(t, err)
	assert.Equal(t, constants.LifecycleActive, res.Invoice.LifecycleState)
	assert.Equal(t, 2, eng.calls, "replace runs recognition again")
}

func TestIngestEngineErrorPropagatesClassification(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{err: common.Permanent("recognize", assert.AnError)}
	svc := newTestService(t, eng, invoices, dedup.PolicySkip)

	_, err := svc.Ingest(context.Background(), uuid.New(), []byte("doc"), "a.pdf", constants.SourceUpload)
	require.Error(t, err)
	assert.True(t, common.IsPermanent(err))

	eng.err = common.ErrQuotaExceeded
	_, err = svc.Ingest(context.Background(), uuid.New(), []byte("doc2"), "b.pdf", constants.SourceUpload)
	require.Error(t, err)
	assert.True(t, common.IsQuota(err))
}

func TestUploadValidation(t *testing.T) {
	invoices := newMemInvoices()
	eng := &stubEngine{out: trainOutput()}
	svc := newTestService(t, eng, invoices, dedup.PolicySkip)
	up := NewUploadService(svc, okProfiles{}, nil)

	_, err := up.Upload(context.Background(), uuid.New(), "notes.txt", []byte("x"))
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = up.Upload(context.Background(), uuid.New(), "a.pdf", nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	res, err := up.Upload(context.Background(), uuid.New(), "a.pdf", []byte("fine"))
	require.NoError(t, err)
	assert.False(t, res.Deduplicated)
}

// okProfiles satisfies ProfileRepository for the upload path.
type okProfiles struct{}

func (okProfiles) GetByID(context.Context, uuid.UUID) (*ent.Profile, error) {
	return &ent.Profile{}, nil
}

func (okProfiles) CreateProfile(context.Context, string) (*ent.Profile, error) {
	return &ent.Profile{}, nil
}

func (okProfiles) ListProfiles(context.Context) ([]*ent.Profile, error) { return nil, nil }

func (okProfiles) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }
