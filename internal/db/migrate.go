package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent; the full
// list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		client         TEXT NOT NULL DEFAULT '',
		description    TEXT NOT NULL DEFAULT '',
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		project_number TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL DEFAULT '',
		street         TEXT NOT NULL DEFAULT '',
		house_number   TEXT NOT NULL DEFAULT '',
		city           TEXT NOT NULL DEFAULT '',
		zip_code       TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS participants (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		status     TEXT NOT NULL
		           CHECK(status IN ('ACTIVE','INVITED','INACTIVE')),
		user_id    TEXT,
		company_id TEXT,
		role       TEXT,
		UNIQUE(project_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_participants_project ON participants(project_id)`,

	`CREATE TABLE IF NOT EXISTS crafts (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL,
		position   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_crafts_project ON crafts(project_id, position)`,

	`CREATE TABLE IF NOT EXISTS work_areas (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_work_areas_project ON work_areas(project_id, position)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		type         TEXT NOT NULL
		             CHECK(type IN ('PROJECT','INVESTOR','CRAFT')),
		date         TEXT NOT NULL,
		header       INTEGER NOT NULL DEFAULT 0,
		craft_id     TEXT REFERENCES crafts(id),
		work_area_id TEXT REFERENCES work_areas(id),
		description  TEXT NOT NULL DEFAULT '',
		position     INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_milestones_project ON milestones(project_id, position)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		location     TEXT NOT NULL DEFAULT '',
		craft_id     TEXT NOT NULL REFERENCES crafts(id),
		assignee_id  TEXT REFERENCES participants(id),
		work_area_id TEXT REFERENCES work_areas(id),
		status       TEXT NOT NULL
		             CHECK(status IN ('DRAFT','OPEN','STARTED','CLOSED','ACCEPTED')),
		start_date   TEXT,
		end_date     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS day_cards (
		id       TEXT PRIMARY KEY,
		task_id  TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		date     TEXT NOT NULL,
		title    TEXT NOT NULL,
		manpower REAL NOT NULL DEFAULT 1,
		notes    TEXT NOT NULL DEFAULT '',
		status   TEXT NOT NULL
		         CHECK(status IN ('OPEN','DONE','APPROVED','NOTDONE')),
		reason   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_day_cards_task ON day_cards(task_id, date)`,

	`CREATE TABLE IF NOT EXISTS topics (
		id          TEXT PRIMARY KEY,
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		criticality TEXT NOT NULL
		            CHECK(criticality IN ('CRITICAL','UNCRITICAL')),
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_topics_task ON topics(task_id)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id             TEXT PRIMARY KEY,
		topic_id       TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
		timestamp      TEXT NOT NULL,
		author_user_id TEXT NOT NULL,
		content        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_topic ON messages(topic_id, timestamp)`,

	`CREATE TABLE IF NOT EXISTS relations (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		type        TEXT NOT NULL
		            CHECK(type IN ('FINISH_TO_START','PART_OF')),
		source_id   TEXT NOT NULL,
		source_kind TEXT NOT NULL CHECK(source_kind IN ('TASK','MILESTONE')),
		target_id   TEXT NOT NULL,
		target_kind TEXT NOT NULL CHECK(target_kind IN ('TASK','MILESTONE')),
		critical    INTEGER,
		UNIQUE(project_id, type, source_id, source_kind, target_id, target_kind)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_relations_project ON relations(project_id)`,

	`CREATE TABLE IF NOT EXISTS event_log (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id    TEXT NOT NULL,
		event_type    TEXT NOT NULL,
		resource_type TEXT NOT NULL DEFAULT '',
		resource_id   TEXT NOT NULL DEFAULT '',
		payload       TEXT,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_event_log_project ON event_log(project_id, id)`,
}
