// Package postgres implements the content repository on the relational
// backend: bilingual columns on one projects row, skills rows, and a
// (category, key) keyed profile table.
package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `
id, title_ar, title_en, description_ar, description_en,
coalesce(content_ar, ''), coalesce(content_en, ''),
year, tags, image_count, images, coalesce(link, ''),
display_order, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var id int64
	err := row.Scan(
		&id, &p.TitleAR, &p.TitleEN, &p.DescriptionAR, &p.DescriptionEN,
		&p.ContentAR, &p.ContentEN,
		&p.Year, &p.Tags, &p.ImageCount, &p.Images, &p.Link,
		&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ID = strconv.FormatInt(id, 10)
	return &p, nil
}

func (r *Repo) GetProjects(ctx context.Context) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by display_order asc, created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repo) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	dbID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	const q = `
select ` + projectColumns + `
from projects
where id = $1;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, dbID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repo) AddProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
insert into projects (
  title_ar, title_en, description_ar, description_en,
  content_ar, content_en, year, tags, image_count, images, link, display_order
)
values ($1, $2, $3, $4, nullif($5,''), nullif($6,''), $7, coalesce($8::text[], '{}'), $9, coalesce($10::text[], '{}'), nullif($11,''), $12)
returning ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q,
		in.TitleAR, in.TitleEN, in.DescriptionAR, in.DescriptionEN,
		in.ContentAR, in.ContentEN, in.Year, in.Tags, in.ImageCount,
		in.Images, in.Link, in.DisplayOrder,
	))
}

// UpdateProject merges the set fields into the row and overwrites them
// column by column. It reads the current row first so unset fields keep
// their value, then writes the full desired state in one statement.
func (r *Repo) UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error) {
	current, err := r.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(current)

	dbID, _ := parseID(id)
	const q = `
update projects
set title_ar = $2, title_en = $3, description_ar = $4, description_en = $5,
    content_ar = nullif($6,''), content_en = nullif($7,''),
    year = $8, tags = coalesce($9::text[], '{}'), image_count = $10, images = coalesce($11::text[], '{}'),
    link = nullif($12,''), display_order = $13, updated_at = now()
where id = $1
returning ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, dbID,
		current.TitleAR, current.TitleEN, current.DescriptionAR, current.DescriptionEN,
		current.ContentAR, current.ContentEN, current.Year, current.Tags,
		current.ImageCount, current.Images, current.Link, current.DisplayOrder,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repo) DeleteProject(ctx context.Context, id string) (bool, error) {
	dbID, err := parseID(id)
	if err != nil {
		return false, nil
	}

	const q = `delete from projects where id = $1;`
	ct, err := r.db.Exec(ctx, q, dbID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func parseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}
