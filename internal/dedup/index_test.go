package dedup

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/entity"
)

type fakeBlobRepo struct {
	rows map[string]*entity.ContentBlob // key: profile|hexhash
}

func newFakeBlobRepo() *fakeBlobRepo {
	return &fakeBlobRepo{rows: make(map[string]*entity.ContentBlob)}
}

func blobKey(profileID uuid.UUID, hash []byte) string {
	return profileID.String() + "|" + hex.EncodeToString(hash)
}

func (f *fakeBlobRepo) UpsertByHash(_ context.Context, profileID uuid.UUID, hash []byte, size int64, ref string) (*entity.ContentBlob, bool, error) {
	key := blobKey(profileID, hash)
	if b, ok := f.rows[key]; ok {
		return b, true, nil
	}
	b := &entity.ContentBlob{ID: uuid.New(), ProfileID: profileID, Hash: hash, ByteSize: size, StorageRef: ref}
	f.rows[key] = b
	return b, false, nil
}

type fakeInvoiceFinder struct {
	rows map[string]*entity.Invoice
}

func newFakeInvoiceFinder() *fakeInvoiceFinder {
	return &fakeInvoiceFinder{rows: make(map[string]*entity.Invoice)}
}

func (f *fakeInvoiceFinder) FindByProfileAndHash(_ context.Context, profileID uuid.UUID, hash []byte) (*entity.Invoice, error) {
	return f.rows[blobKey(profileID, hash)], nil
}

func (f *fakeInvoiceFinder) put(profileID uuid.UUID, hash []byte, state constants.LifecycleState) *entity.Invoice {
	inv := &entity.Invoice{ID: uuid.New(), ProfileID: profileID, ContentHash: hash, LifecycleState: state}
	f.rows[blobKey(profileID, hash)] = inv
	return inv
}

type fakeSaver struct {
	saves int
}

func (f *fakeSaver) Save(hash []byte, _ []byte) (string, error) {
	f.saves++
	return hex.EncodeToString(hash), nil
}

func TestComputeIdentity(t *testing.T) {
	content := []byte("same bytes, different filename")
	want := sha256.Sum256(content)

	hash, size, err := ComputeIdentity(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, want[:], hash)
	assert.Equal(t, int64(len(content)), size)

	// identity depends on bytes alone, so a re-read is byte-for-byte equal
	again, _, err := ComputeIdentity(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, hash, again)
}

func TestRegisterNewContent(t *testing.T) {
	blobs := newFakeBlobRepo()
	saver := &fakeSaver{}
	ix := NewIndex(blobs, newFakeInvoiceFinder(), saver, nil)

	out, err := ix.Register(context.Background(), uuid.New(), []byte("fresh document"))
	require.NoError(t, err)
	require.NotNil(t, out.Blob)
	assert.False(t, out.Deduplicated)
	assert.False(t, out.SoftDeleted)
	assert.Nil(t, out.Existing)
	assert.Equal(t, 1, saver.saves)
	assert.Equal(t, int64(len("fresh document")), out.Blob.ByteSize)
}

func TestRegisterActiveDuplicate(t *testing.T) {
	profileID := uuid.New()
	content := []byte("already ingested")
	sum := sha256.Sum256(content)

	invoices := newFakeInvoiceFinder()
	existing := invoices.put(profileID, sum[:], constants.LifecycleActive)
	saver := &fakeSaver{}
	ix := NewIndex(newFakeBlobRepo(), invoices, saver, nil)

	out, err := ix.Register(context.Background(), profileID, content)
	require.NoError(t, err)
	assert.True(t, out.Deduplicated)
	assert.False(t, out.SoftDeleted)
	require.NotNil(t, out.Existing)
	assert.Equal(t, existing.ID, out.Existing.ID)
	// a dedup hit must not touch the blob store
	assert.Equal(t, 0, saver.saves)
}

func TestRegisterSoftDeletedMatch(t *testing.T) {
	profileID := uuid.New()
	content := []byte("deleted then re-uploaded")
	sum := sha256.Sum256(content)

	invoices := newFakeInvoiceFinder()
	invoices.put(profileID, sum[:], constants.LifecycleSoftDeleted)
	ix := NewIndex(newFakeBlobRepo(), invoices, &fakeSaver{}, nil)

	out, err := ix.Register(context.Background(), profileID, content)
	require.NoError(t, err)
	assert.True(t, out.SoftDeleted)
	assert.False(t, out.Deduplicated, "soft-deleted match is a policy decision, not a plain duplicate")
	require.NotNil(t, out.Existing)
}

func TestRegisterScopedPerOwner(t *testing.T) {
	content := []byte("shared bytes")
	sum := sha256.Sum256(content)

	invoices := newFakeInvoiceFinder()
	invoices.put(uuid.New(), sum[:], constants.LifecycleActive)
	ix := NewIndex(newFakeBlobRepo(), invoices, &fakeSaver{}, nil)

	// a different owner sees no duplicate
	out, err := ix.Register(context.Background(), uuid.New(), content)
	require.NoError(t, err)
	assert.False(t, out.Deduplicated)
	require.NotNil(t, out.Blob)
}

func TestRegisterReusesOrphanBlob(t *testing.T) {
	profileID := uuid.New()
	content := []byte("blob row exists, invoice does not")

	blobs := newFakeBlobRepo()
	ix := NewIndex(blobs, newFakeInvoiceFinder(), &fakeSaver{}, nil)

	first, err := ix.Register(context.Background(), profileID, content)
	require.NoError(t, err)
	second, err := ix.Register(context.Background(), profileID, content)
	require.NoError(t, err)
	assert.Equal(t, first.Blob.ID, second.Blob.ID)
}
