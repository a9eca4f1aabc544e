package storage

// Tables lists every entity table in creation order. The search sources and
// the import/export commands iterate this list, so keep it in sync with the
// DDL below.
var Tables = []string{
	"organizations",
	"contacts",
	"locations",
	"documents",
	"passwords",
	"configurations",
	"domains",
	"assets",
	"sidebar_items",
	"page_contents",
	"custom_fields",
}

// schemaDDL creates the entity tables. Every table except organizations is
// tenant-scoped through an organization_id column. Timestamps are stored as
// RFC 3339 strings.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		mime_type TEXT NOT NULL DEFAULT '',
		folder TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS passwords (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		username TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		secret TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS configurations (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		config_type TEXT NOT NULL DEFAULT '',
		hostname TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT '',
		manufacturer TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		serial_number TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS domains (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		registrar TEXT NOT NULL DEFAULT '',
		expires_at TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		asset_type TEXT NOT NULL DEFAULT '',
		manufacturer TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		serial_number TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS sidebar_items (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		label TEXT NOT NULL DEFAULT '',
		slug TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS page_contents (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		content_type TEXT NOT NULL DEFAULT '',
		payload TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS custom_fields (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL DEFAULT '',
		entity_type TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		value TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_org ON contacts(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_locations_org ON locations(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_org ON documents(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_passwords_org ON passwords(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_configurations_org ON configurations(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_domains_org ON domains(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_org ON assets(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sidebar_items_org ON sidebar_items(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_page_contents_org ON page_contents(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_custom_fields_org ON custom_fields(organization_id)`,
}
