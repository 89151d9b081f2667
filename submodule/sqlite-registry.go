/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package submodule

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/arnekeller/gititer/perrors"
)

const sqliteDriverName = "sqlite"

const createTableSQL = `create table if not exists submodule (
	path text primary key,
	oid blob not null
)`

// SQLiteRegistry is a Registry persisted to a SQLite database, the teacher's
// own choice of pure-Go driver — a small persisted store is a more faithful
// stand-in for "the submodule registry is an external collaborator" than an
// in-memory map, since real .gitmodules data outlives any one process.
type SQLiteRegistry struct {
	db *sql.DB
}

// NewSQLiteRegistry opens (or creates) dataSourceName and ensures the
// submodule table exists.
func NewSQLiteRegistry(dataSourceName string) (reg *SQLiteRegistry, err error) {
	db, err := sql.Open(sqliteDriverName, dataSourceName)
	if err != nil {
		return nil, perrors.NewOSError(err, "submodule: sql.Open %s", dataSourceName)
	}
	if _, err = db.Exec(createTableSQL); err != nil {
		return nil, perrors.NewOSError(err, "submodule: create table")
	}
	return &SQLiteRegistry{db: db}, nil
}

// Register records path as a submodule at oid, overwriting any prior entry.
func (r *SQLiteRegistry) Register(path string, oid [20]byte) (err error) {
	if _, err = r.db.Exec(
		`insert into submodule(path, oid) values (?, ?)
		 on conflict(path) do update set oid = excluded.oid`,
		path, oid[:],
	); err != nil {
		return perrors.NewOSError(err, "submodule: register %s", path)
	}
	return nil
}

func (r *SQLiteRegistry) Lookup(path string) (status Status, err error) {
	var oidBytes []byte
	err = r.db.QueryRow(`select oid from submodule where path = ?`, path).Scan(&oidBytes)
	if err == sql.ErrNoRows {
		return Status{}, ErrNotFound
	}
	if err != nil {
		return Status{}, perrors.NewOSError(err, "submodule: lookup %s", path)
	}
	status.Path = path
	copy(status.Oid[:], oidBytes)
	return status, nil
}

// Close releases the underlying database handle.
func (r *SQLiteRegistry) Close() error {
	return r.db.Close()
}
