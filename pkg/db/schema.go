package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Builds: one row per static build run
CREATE TABLE IF NOT EXISTS builds (
    build_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    output_dir TEXT NOT NULL,
    page_count INTEGER NOT NULL DEFAULT 0,
    failed_count INTEGER NOT NULL DEFAULT 0,
    -- SHA256 of the metadata record the build rendered with
    metadata_hash TEXT NOT NULL,
    duration_ms INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_builds_created ON builds(created_at);
CREATE INDEX IF NOT EXISTS idx_builds_metadata ON builds(metadata_hash);

-- Build pages: every document a build wrote (or failed to write)
CREATE TABLE IF NOT EXISTS build_pages (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    build_id INTEGER NOT NULL,
    route TEXT NOT NULL,
    source_path TEXT,
    file_path TEXT,
    size_bytes INTEGER DEFAULT 0,
    content_hash TEXT,
    detected_language TEXT,
    status TEXT NOT NULL,          -- success, failed
    error TEXT,
    FOREIGN KEY (build_id) REFERENCES builds(build_id) ON DELETE CASCADE,
    UNIQUE(build_id, route)
);

CREATE INDEX IF NOT EXISTS idx_build_pages_build ON build_pages(build_id);
CREATE INDEX IF NOT EXISTS idx_build_pages_route ON build_pages(route);
`
