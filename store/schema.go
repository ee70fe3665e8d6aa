package store

// schemaSQL is the DDL for the pathway document cache.
const schemaSQL = `
-- Fetched KGML documents, keyed by pathway identifier, with hash-based
-- change detection.
CREATE TABLE IF NOT EXISTS pathways (
    pathway_id TEXT PRIMARY KEY,
    content BLOB NOT NULL,
    content_hash TEXT NOT NULL,
    fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pathways_fetched_at ON pathways(fetched_at);
`
