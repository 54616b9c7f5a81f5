package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/entity"
	"github.com/billfold/invoice-ingest/internal/ingest"
	"github.com/billfold/invoice-ingest/internal/mailbox"
)

// fakeJobs is an in-memory IngestJobRepository.
type fakeJobs struct {
	mu      sync.Mutex
	jobs    map[uuid.UUID]*entity.IngestJob
	batches map[uuid.UUID][]*entity.JobBatch
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{
		jobs:    make(map[uuid.UUID]*entity.IngestJob),
		batches: make(map[uuid.UUID][]*entity.JobBatch),
	}
}

func (f *fakeJobs) Create(_ context.Context, profileID uuid.UUID, folder, criteria string) (*entity.IngestJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := &entity.IngestJob{
		ID:        uuid.New(),
		ProfileID: profileID,
		Phase:     constants.JobPhasePending,
		Folder:    folder,
		Criteria:  criteria,
		StartedAt: time.Now(),
	}
	f.jobs[job.ID] = job
	return cloneJob(job), nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.IngestJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneJob(job), nil
}

func (f *fakeJobs) SetPhase(_ context.Context, id uuid.UUID, phase constants.JobPhase) (*entity.IngestJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := f.jobs[id]
	job.Phase = phase
	if phase.Terminal() {
		now := time.Now()
		job.FinishedAt = &now
	}
	return cloneJob(job), nil
}

func (f *fakeJobs) RecordScanProgress(_ context.Context, id uuid.UUID, cursor uint32, scanned, matched uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := f.jobs[id]
	job.Cursor = cursor
	job.Counters.Scanned += scanned
	job.Counters.Matched += matched
	return nil
}

func (f *fakeJobs) AddExtractCounts(_ context.Context, id uuid.UUID, extracted, duplicates, failed uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := f.jobs[id]
	job.Counters.Extracted += extracted
	job.Counters.Duplicates += duplicates
	job.Counters.Failed += failed
	return nil
}

func (f *fakeJobs) AppendErrors(_ context.Context, id uuid.UUID, items []entity.ItemError) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[id].ErrorLog = append(f.jobs[id].ErrorLog, items...)
	return nil
}

func (f *fakeJobs) RequestCancel(_ context.Context, id uuid.UUID) (*entity.IngestJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := f.jobs[id]
	job.Cancelled = true
	return cloneJob(job), nil
}

func (f *fakeJobs) FindResumable(_ context.Context, profileID uuid.UUID) (*entity.IngestJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, job := range f.jobs {
		if job.ProfileID == profileID && !job.Phase.Terminal() {
			return cloneJob(job), nil
		}
	}
	return nil, nil
}

func (f *fakeJobs) CreateBatches(_ context.Context, jobID uuid.UUID, startSeq int, uidBatches [][]uint32) ([]*entity.JobBatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.JobBatch
	for i, uids := range uidBatches {
		b := &entity.JobBatch{
			ID:     uuid.New(),
			JobID:  jobID,
			Seq:    startSeq + i,
			UIDs:   uids,
			Status: constants.BatchStatusPending,
		}
		f.batches[jobID] = append(f.batches[jobID], b)
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeJobs) ListBatches(_ context.Context, jobID uuid.UUID, status constants.BatchStatus) ([]*entity.JobBatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.JobBatch
	for _, b := range f.batches[jobID] {
		if status == "" || b.Status == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeJobs) SetBatchStatus(_ context.Context, batchID uuid.UUID, status constants.BatchStatus, counters entity.JobCounters) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, bs := range f.batches {
		for _, b := range bs {
			if b.ID == batchID {
				b.Status = status
				b.Counters = counters
				return nil
			}
		}
	}
	return common.ErrNotFound
}

func cloneJob(job *entity.IngestJob) *entity.IngestJob {
	cp := *job
	cp.ErrorLog = append([]entity.ItemError(nil), job.ErrorLog...)
	return &cp
}

// fakeMail serves a fixed set of messages, each with one pdf attachment.
type fakeMail struct {
	uids       []uint32
	plain      map[uint32]bool // messages without attachments
	broken     map[uint32]bool // messages with unreadable body structure
	connectErr error
	fetchFails map[uint32]error // per-uid attachment fetch failures
}

func (m *fakeMail) Connect(context.Context, mailbox.Config) error { return m.connectErr }
func (m *fakeMail) Close() error                                  { return nil }

func (m *fakeMail) Search(_ context.Context, criteria mailbox.SearchCriteria) ([]uint32, error) {
	var out []uint32
	for _, uid := range m.uids {
		if uid > criteria.AfterUID {
			out = append(out, uid)
		}
	}
	return out, nil
}

func (m *fakeMail) Fetch(_ context.Context, uids []uint32) ([]mailbox.FetchRecord, error) {
	out := make([]mailbox.FetchRecord, len(uids))
	for i, uid := range uids {
		bs := fmt.Sprintf(`(("text" "plain" ("charset" "utf-8") NIL NIL "7bit" 120 4)("application" "pdf" ("name" "doc-%d.pdf") NIL NIL "base64" 8000) "mixed")`, uid)
		if m.plain[uid] {
			bs = `("text" "plain" ("charset" "utf-8") NIL NIL "7bit" 120 4)`
		}
		if m.broken[uid] {
			bs = `("text" "plain`
		}
		out[i] = mailbox.FetchRecord{UID: uid, BodyStructure: bs}
	}
	return out, nil
}

func (m *fakeMail) FetchAttachment(_ context.Context, cand mailbox.AttachmentCandidate) ([]byte, error) {
	if err := m.fetchFails[cand.SourceUID]; err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("content of uid %d", cand.SourceUID)), nil
}

// fakePipeline records ingested filenames and simulates outcomes. A seen
// map stands in for the dedup index: re-ingested content reports as a
// duplicate, exactly like the real pipeline.
type fakePipeline struct {
	mu        sync.Mutex
	ingested  []string
	seen      map[string]bool
	dupUIDs   map[string]bool // content pre-seeded as duplicate
	failWith  map[string]error
	quotaHits int
	quotaCap  int // engine calls allowed before quota trips; 0 means unlimited
	calls     int
}

func (p *fakePipeline) Ingest(_ context.Context, _ uuid.UUID, content []byte, filename string, _ constants.InvoiceSource) (*ingest.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dupUIDs[string(content)] || p.seen[string(content)] {
		return &ingest.Result{Invoice: &entity.Invoice{ID: uuid.New()}, Deduplicated: true}, nil
	}
	p.calls++
	if p.quotaCap > 0 && p.calls > p.quotaCap {
		p.quotaHits++
		return nil, common.ErrQuotaExceeded
	}
	if err := p.failWith[filename]; err != nil {
		return nil, err
	}
	if p.seen == nil {
		p.seen = make(map[string]bool)
	}
	p.seen[string(content)] = true
	p.ingested = append(p.ingested, filename)
	return &ingest.Result{Invoice: &entity.Invoice{ID: uuid.New()}}, nil
}

func testConfig() common.ScanConfig {
	return common.ScanConfig{
		InvocationBudget: 50 * time.Second,
		BudgetReserve:    0.2,
		BatchSize:        10,
		BatchWorkers:     4,
	}
}

func newTestOrchestrator(jobs *fakeJobs, mail *fakeMail, pipe *fakePipeline, cfg common.ScanConfig) *Orchestrator {
	return New(jobs, mail, mailbox.NewExtractor(nil), mailbox.Config{}, pipe, cfg, nil)
}

func uidRange(from, to uint32) []uint32 {
	var out []uint32
	for uid := from; uid <= to; uid++ {
		out = append(out, uid)
	}
	return out
}

func TestFullRunScanAndExtract(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{uids: uidRange(1, 25), plain: map[uint32]bool{5: true, 6: true}}
	pipe := &fakePipeline{}
	o := newTestOrchestrator(jobs, mail, pipe, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)

	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseComplete, job.Phase)
	assert.Equal(t, uint32(25), job.Counters.Scanned)
	assert.Equal(t, uint32(23), job.Counters.Matched)
	assert.Equal(t, uint32(23), job.Counters.Extracted)
	assert.Equal(t, uint32(0), job.Counters.Failed)
	assert.Len(t, pipe.ingested, 23)
}

func TestScanResumesFromCursor(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{uids: uidRange(1, 100)}
	pipe := &fakePipeline{}

	cfg := testConfig()
	o := newTestOrchestrator(jobs, mail, pipe, cfg)

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)

	// clock that expires after four chunks of scanning
	calls := 0
	base := time.Now()
	o.now = func() time.Time {
		calls++
		if calls > 5 {
			return base.Add(cfg.InvocationBudget)
		}
		return base
	}

	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseScanning, job.Phase)
	assert.Equal(t, uint32(40), job.Cursor)
	assert.Equal(t, uint32(40), job.Counters.Scanned)

	// next invocation gets a fresh budget and picks up after uid 40
	o.now = time.Now
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseComplete, job.Phase)
	assert.Equal(t, uint32(100), job.Cursor)
	assert.Equal(t, uint32(100), job.Counters.Scanned)
	assert.Equal(t, uint32(100), job.Counters.Extracted)
}

func TestItemFailureIsIsolated(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{uids: uidRange(1, 10)}
	pipe := &fakePipeline{failWith: map[string]error{
		"doc-3.pdf": common.Permanent("recognize", fmt.Errorf("corrupt document")),
	}}
	o := newTestOrchestrator(jobs, mail, pipe, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.JobPhaseComplete, job.Phase)
	assert.Equal(t, uint32(9), job.Counters.Extracted)
	assert.Equal(t, uint32(1), job.Counters.Failed)
	require.Len(t, job.ErrorLog, 1)
	assert.Equal(t, "doc-3.pdf", job.ErrorLog[0].Item)
	assert.Contains(t, job.ErrorLog[0].Reason, "corrupt document")
}

func TestUnreadableDescriptorLandsInJobLog(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{uids: uidRange(1, 5), broken: map[uint32]bool{3: true}}
	pipe := &fakePipeline{}
	o := newTestOrchestrator(jobs, mail, pipe, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)

	// the unreadable message is dropped, not fatal
	assert.Equal(t, constants.JobPhaseComplete, job.Phase)
	assert.Equal(t, uint32(5), job.Counters.Scanned)
	assert.Equal(t, uint32(4), job.Counters.Matched)
	assert.Equal(t, uint32(4), job.Counters.Extracted)

	// but its reason survives on the job, not only in the logs
	require.Len(t, job.ErrorLog, 1)
	assert.Equal(t, "uid:3", job.ErrorLog[0].Item)
	assert.Contains(t, job.ErrorLog[0].Reason, "unparseable body structure")
}

func TestDuplicatesCountedNotFailed(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{uids: uidRange(1, 6)}
	pipe := &fakePipeline{dupUIDs: map[string]bool{
		"content of uid 2": true,
		"content of uid 4": true,
	}}
	o := newTestOrchestrator(jobs, mail, pipe, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.JobPhaseComplete, job.Phase)
	assert.Equal(t, uint32(4), job.Counters.Extracted)
	assert.Equal(t, uint32(2), job.Counters.Duplicates)
	assert.Equal(t, uint32(0), job.Counters.Failed)
	assert.Empty(t, job.ErrorLog)
}

func TestQuotaHaltsInvocationAndResumes(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{uids: uidRange(1, 30)}
	pipe := &fakePipeline{quotaCap: 15}
	o := newTestOrchestrator(jobs, mail, pipe, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)

	// halted mid-extraction, not failed
	assert.Equal(t, constants.JobPhaseExtracting, job.Phase)
	assert.Greater(t, pipe.quotaHits, 0)

	// quota window reset: lift the cap and re-invoke
	pipe.mu.Lock()
	pipe.quotaCap = 0
	pipe.mu.Unlock()
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseComplete, job.Phase)
	assert.Equal(t, uint32(30), job.Counters.Extracted+job.Counters.Duplicates)
}

func TestCancelHonoredAtBatchBoundary(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{uids: uidRange(1, 10)}
	pipe := &fakePipeline{}
	o := newTestOrchestrator(jobs, mail, pipe, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	_, err = o.Cancel(context.Background(), job.ID)
	require.NoError(t, err)

	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseCancelled, job.Phase)
	assert.Empty(t, pipe.ingested)
}

func TestPermanentConnectFailureMarksScanFailed(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{connectErr: fmt.Errorf("mailbox login: %w", fmt.Errorf("NO AUTHENTICATIONFAILED"))}
	o := newTestOrchestrator(jobs, mail, &fakePipeline{}, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseScanFailed, job.Phase)
}

func TestTransientConnectFailureLeavesJobResumable(t *testing.T) {
	jobs := newFakeJobs()
	mail := &fakeMail{connectErr: common.Transient("mailbox dial", fmt.Errorf("connection refused"))}
	o := newTestOrchestrator(jobs, mail, &fakePipeline{}, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	_, err = o.RunInvocation(context.Background(), job.ID)
	require.Error(t, err)

	job, err = jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseScanning, job.Phase)

	// the fault clears and the same job completes
	mail.connectErr = nil
	job, err = o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseComplete, job.Phase)
}

func TestTerminalJobIsNoOp(t *testing.T) {
	jobs := newFakeJobs()
	o := newTestOrchestrator(jobs, &fakeMail{}, &fakePipeline{}, testConfig())

	job, err := o.StartJob(context.Background(), uuid.New(), "INBOX", "")
	require.NoError(t, err)
	_, err = jobs.SetPhase(context.Background(), job.ID, constants.JobPhaseComplete)
	require.NoError(t, err)

	got, err := o.RunInvocation(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobPhaseComplete, got.Phase)
}

func TestCountersSurviveRoundTrip(t *testing.T) {
	counters := entity.JobCounters{Scanned: 7, Matched: 5, Extracted: 4, Duplicates: 1, Failed: 1}
	raw, err := json.Marshal(counters)
	require.NoError(t, err)
	var back entity.JobCounters
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, counters, back)
}
