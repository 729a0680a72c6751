package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cost_records (
    file_path          TEXT NOT NULL,
    city               TEXT NOT NULL,
    month              TEXT NOT NULL,
    campus_job_income  INTEGER NOT NULL,
    stipend_income     INTEGER NOT NULL,
    rent               INTEGER NOT NULL,
    utilities          INTEGER NOT NULL,
    food               INTEGER NOT NULL,
    transport          INTEGER NOT NULL,
    phone_internet     INTEGER NOT NULL,
    misc_basic         INTEGER NOT NULL,
    PRIMARY KEY (file_path, city, month)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path          TEXT PRIMARY KEY,
    mtime_ns           INTEGER NOT NULL,
    size_bytes         INTEGER NOT NULL,
    parsed_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_city ON cost_records(city);
CREATE INDEX IF NOT EXISTS idx_records_month ON cost_records(month);
`
