package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name        TEXT PRIMARY KEY,
    mode        TEXT NOT NULL,
    total_cost  REAL NOT NULL,
    saved_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scenario_entries (
    scenario    TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
    category_id TEXT NOT NULL,
    allocation  REAL NOT NULL,
    adjustment  REAL NOT NULL,
    PRIMARY KEY (scenario, category_id)
);

CREATE INDEX IF NOT EXISTS idx_scenarios_saved ON scenarios(saved_at);
`
