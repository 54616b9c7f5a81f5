package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/billfold/invoice-ingest/gen/proto/ingest/v1"
	"github.com/billfold/invoice-ingest/internal/repository"
)

type ProfileServer struct {
	v1.UnimplementedProfilesServiceServer
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewProfileServer(profiles repository.ProfileRepository, logger *slog.Logger) *ProfileServer {
	return &ProfileServer{
		profiles: profiles,
		logger:   logger,
	}
}

// CreateProfile creates a new profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *v1.CreateProfileRequest) (*v1.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	p, err := s.profiles.CreateProfile(ctx, name)
	if err != nil {
		s.logger.Error("create profile failed", "name", name, "error", err)
		return nil, status.Error(codes.Internal, "create profile failed")
	}
	return &v1.CreateProfileResponse{Profile: toPBProfile(p)}, nil
}

// ListProfiles lists all the profiles.
func (s *ProfileServer) ListProfiles(ctx context.Context, _ *v1.ListProfilesRequest) (*v1.ListProfilesResponse, error) {
	plist, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", "error", err)
		return nil, status.Error(codes.Internal, "list profiles failed")
	}
	out := make([]*v1.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, toPBProfile(p))
	}
	return &v1.ListProfilesResponse{Profiles: out}, nil
}
