package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/gen/ent"
	entblob "github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/internal/entity"
)

type ContentBlobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ContentBlob, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.ContentBlob, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, hash []byte, size int64, storageRef string) (*entity.ContentBlob, bool, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
}

type contentBlobRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContentBlobRepository(client *ent.Client, logger *slog.Logger) ContentBlobRepository {
	return &contentBlobRepo{
		client: client,
		logger: logger,
	}
}

func (r *contentBlobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContentBlob, error) {
	row, err := r.client.ContentBlob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toContentBlob(row), nil
}

func (r *contentBlobRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.ContentBlob, error) {
	row, err := r.client.ContentBlob.Query().
		Where(
			entblob.ProfileID(profileID),
			entblob.Hash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toContentBlob(row), nil
}

// UpsertByHash inserts a blob row, treating a unique-constraint violation
// as "already exists". The composite index on (profile_id, hash) is the
// real guarantee; the pre-insert lookup only saves a round trip.
func (r *contentBlobRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, hash []byte, size int64, storageRef string) (*entity.ContentBlob, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.client.ContentBlob.Create().
		SetProfileID(profileID).
		SetHash(hash).
		SetByteSize(size).
		SetStorageRef(storageRef).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// lost the race; the winner's row is what we want
			existing, lookupErr := r.GetByProfileAndHash(ctx, profileID, hash)
			if lookupErr == nil {
				return existing, true, nil
			}
		}
		r.logger.Error("failed to upsert content blob", "profile_id", profileID, "error", err)
		return nil, false, err
	}
	return toContentBlob(row), false, nil
}

func (r *contentBlobRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	n, err := r.client.ContentBlob.Delete().
		Where(entblob.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete content blobs", "count", len(ids), "error", err)
		return 0, err
	}
	return n, nil
}
