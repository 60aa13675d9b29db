package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the content tables if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	const schema = `
create table if not exists projects (
  id             bigserial primary key,
  title_ar       text not null,
  title_en       text not null,
  description_ar text not null,
  description_en text not null,
  content_ar     text,
  content_en     text,
  year           text not null default '',
  tags           text[] not null default '{}',
  image_count    int not null default 0,
  images         text[] not null default '{}',
  link           text,
  display_order  int not null default 0,
  created_at     timestamptz not null default now(),
  updated_at     timestamptz not null default now()
);

create table if not exists skills (
  id       bigserial primary key,
  name     text not null,
  progress int not null default 0,
  category text not null default 'tools',
  icon     text
);

create table if not exists profile (
  category text not null,
  key      text not null,
  value    text not null default '',
  primary key (category, key)
);
`
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate content schema: %w", err)
	}
	return nil
}
