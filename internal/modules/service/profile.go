package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/founderflow/founderflow/internal/infra/blob"
	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

const (
	profilesTable = "profiles"
	maxAvatarSize = 5 << 20
)

// AvatarStore is the slice of the object store used for avatars.
type AvatarStore interface {
	UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error)
	ObjectURL(ctx context.Context, key string) (string, error)
}

type UpdateProfileInput struct {
	FullName  *string
	AvatarURL *string
}

type ProfileService interface {
	Get(ctx context.Context) (*model.Profile, error)
	Update(ctx context.Context, in UpdateProfileInput) (*model.Profile, error)
	UploadAvatar(ctx context.Context, fh *multipart.FileHeader) (*model.Profile, error)
}

type profileService struct {
	r      repo.ProfileRepo
	store  AvatarStore
	access Authorizer
}

func NewProfileService(r repo.ProfileRepo, store AvatarStore, access Authorizer) ProfileService {
	return &profileService{r: r, store: store, access: access}
}

func (s *profileService) Get(ctx context.Context) (*model.Profile, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	return s.r.Get(ctx, uid)
}

func (s *profileService) Update(ctx context.Context, in UpdateProfileInput) (*model.Profile, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if in.FullName != nil {
		name, err := required("full_name", *in.FullName)
		if err != nil {
			return nil, err
		}
		fields["full_name"] = name
	}
	if in.AvatarURL != nil {
		fields["avatar_url"] = nullable(*in.AvatarURL)
	}
	if len(fields) == 0 {
		return nil, invalid("body", "no fields to update")
	}
	if err := s.access.Authorize(ctx, profilesTable, policy.Update, uid); err != nil {
		return nil, err
	}
	return s.r.Update(ctx, uid, fields)
}

func (s *profileService) UploadAvatar(ctx context.Context, fh *multipart.FileHeader) (*model.Profile, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if fh == nil {
		return nil, invalid("file", "is required")
	}
	if fh.Size > maxAvatarSize {
		return nil, invalid("file", "must be at most 5 MB")
	}
	if ct := fh.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return nil, invalid("file", "must be an image")
	}
	if err := s.access.Authorize(ctx, profilesTable, policy.Update, uid); err != nil {
		return nil, err
	}

	meta, err := s.store.UploadFormFile(ctx, "avatars/"+uid.String(), fh)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}
	u, err := s.store.ObjectURL(ctx, meta.Key)
	if err != nil {
		return nil, fmt.Errorf("avatar url: %w", err)
	}
	return s.r.Update(ctx, uid, map[string]interface{}{"avatar_url": u})
}
