package postgres

import (
	"context"
	"strconv"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

func (r *Repo) GetSkills(ctx context.Context) ([]domain.Skill, error) {
	const q = `
select id, name, progress, category, coalesce(icon, '')
from skills
order by category, name;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Skill, 0, 8)
	for rows.Next() {
		var s domain.Skill
		var id int64
		if err := rows.Scan(&id, &s.Name, &s.Progress, &s.Category, &s.Icon); err != nil {
			return nil, err
		}
		s.ID = strconv.FormatInt(id, 10)
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpsertSkill inserts a new skill, or replaces every field of an existing one
// when an id is supplied.
func (r *Repo) UpsertSkill(ctx context.Context, s domain.Skill) (*domain.Skill, error) {
	var id int64
	var err error

	if s.ID == "" {
		const q = `
insert into skills (name, progress, category, icon)
values ($1, $2, $3, nullif($4,''))
returning id;
`
		err = r.db.QueryRow(ctx, q, s.Name, s.Progress, s.Category, s.Icon).Scan(&id)
	} else {
		dbID, perr := parseID(s.ID)
		if perr != nil {
			return nil, domain.ErrNotFound
		}
		const q = `
insert into skills (id, name, progress, category, icon)
values ($1, $2, $3, $4, nullif($5,''))
on conflict (id) do update
set name = excluded.name,
    progress = excluded.progress,
    category = excluded.category,
    icon = excluded.icon
returning id;
`
		err = r.db.QueryRow(ctx, q, dbID, s.Name, s.Progress, s.Category, s.Icon).Scan(&id)
	}
	if err != nil {
		return nil, err
	}

	s.ID = strconv.FormatInt(id, 10)
	return &s, nil
}

func (r *Repo) DeleteSkill(ctx context.Context, id string) (bool, error) {
	dbID, err := parseID(id)
	if err != nil {
		return false, nil
	}

	const q = `delete from skills where id = $1;`
	ct, err := r.db.Exec(ctx, q, dbID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
