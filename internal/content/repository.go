package content

import (
	"context"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

// Repository normalizes CRUD over the two content backends (local JSON
// document, postgres). Calling code never branches on which one it holds.
//
// Ordering contract: GetProjects returns projects sorted by display_order
// ascending, newest first within equal order values. Both implementations
// enforce the same rule.
type Repository interface {
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	AddProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	// UpdateProject applies an overwrite-merge: set fields replace stored
	// fields wholesale. Returns domain.ErrNotFound for unknown ids.
	UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error)
	// DeleteProject is a hard remove. Unknown ids report affected=false
	// without error. Uploaded image blobs are not cleaned up.
	DeleteProject(ctx context.Context, id string) (bool, error)

	GetSkills(ctx context.Context) ([]domain.Skill, error)
	// UpsertSkill inserts the skill, or replaces it when the id already
	// exists. A blank id gets one assigned.
	UpsertSkill(ctx context.Context, s domain.Skill) (*domain.Skill, error)
	DeleteSkill(ctx context.Context, id string) (bool, error)

	GetProfile(ctx context.Context) ([]domain.ProfileEntry, error)
	UpsertProfileEntry(ctx context.Context, e domain.ProfileEntry) error
}

// Snapshotter is the whole-state snapshot surface of the local document store.
// The postgres backend does not implement it; handlers probe with a type
// assertion.
type Snapshotter interface {
	Export() ([]byte, string, error)
	Import(raw []byte) error
	Reset() error
}
