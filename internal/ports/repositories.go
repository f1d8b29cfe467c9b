package ports

import (
	"context"

	"akwana/internal/domain"
)

// ArtifactRepository persists completed artifacts outside the session.
type ArtifactRepository interface {
	Save(ctx context.Context, a domain.Artifact) error
	Load(ctx context.Context, id string) (domain.Artifact, error)
}
