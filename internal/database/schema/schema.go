package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Save Snapshots

-- One row per (namespace, save_key). The payload is the full serialized
-- snapshot of that namespace; the synchronizer overwrites it wholesale.
CREATE TABLE IF NOT EXISTS saves (
    namespace VARCHAR(50) NOT NULL,
    save_key VARCHAR(100) NOT NULL,
    payload JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (namespace, save_key)
);

CREATE INDEX IF NOT EXISTS idx_saves_namespace ON saves (namespace);
`
