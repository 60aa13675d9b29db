package postgres

import (
	"context"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

func (r *Repo) GetProfile(ctx context.Context) ([]domain.ProfileEntry, error) {
	const q = `
select category, key, value
from profile
order by category, key;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProfileEntry
	for rows.Next() {
		var e domain.ProfileEntry
		if err := rows.Scan(&e.Category, &e.Key, &e.Value); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertProfileEntry(ctx context.Context, e domain.ProfileEntry) error {
	const q = `
insert into profile (category, key, value)
values ($1, $2, $3)
on conflict (category, key) do update
set value = excluded.value;
`
	_, err := r.db.Exec(ctx, q, e.Category, e.Key, e.Value)
	return err
}
