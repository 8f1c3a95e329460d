package freq

import "context"

// Load returns the SQLite store when dsn is set, otherwise the embedded Table.
func Load(ctx context.Context, dsn string) (Source, error) {
	if dsn != "" {
		return OpenSQLite(ctx, dsn)
	}
	return DefaultTable()
}
