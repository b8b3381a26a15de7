/*
Package snapshot stores loaded datasets into SQLite database
*/
package snapshot

import (
	"database/sql"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/csvconn/csvconn"
	"go-ml.dev/pkg/csvconn/fu"
	"go-ml.dev/pkg/csvconn/model"
	"go-ml.dev/pkg/zorros/zlog"
	"go-ml.dev/pkg/zorros/zorros"
	"strings"
)

/*
Layout describes which record slots are stored and how columns are named
*/
type Layout struct {
	Columns []string // names of record slots
	Skip    int      // slot which is not stored (id column) or -1
}

/*
Open opens snapshot database, relative paths are resolved in the datasets cache
*/
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fu.SnapshotPath(path))
	if err != nil {
		return nil, zorros.Trace(err)
	}
	return db, nil
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

/*
Write replaces table with the dataset records
*/
func Write(db *sql.DB, table string, layout Layout, ds model.Dataset) (err error) {
	slots := []int{}
	cols := []string{"_key TEXT PRIMARY KEY"}
	names := []string{"_key"}
	for j, c := range layout.Columns {
		if j == layout.Skip {
			continue
		}
		slots = append(slots, j)
		cols = append(cols, quote(c)+" REAL")
		names = append(names, quote(c))
	}

	tx, err := db.Begin()
	if err != nil {
		return zorros.Trace(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.Exec("DROP TABLE IF EXISTS " + quote(table)); err != nil {
		return zorros.Wrapf(err, "failed to drop table %v: %v", table, err.Error())
	}
	if _, err = tx.Exec(fmt.Sprintf("CREATE TABLE %v (%v)", quote(table), strings.Join(cols, ", "))); err != nil {
		return zorros.Wrapf(err, "failed to create table %v: %v", table, err.Error())
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %v (%v) VALUES (%v)", quote(table), strings.Join(names, ", "), marks))
	if err != nil {
		return zorros.Trace(err)
	}
	defer stmt.Close()
	args := make([]interface{}, len(names))
	for _, k := range ds.Keys() {
		rec := ds[k]
		args[0] = k
		for i, j := range slots {
			v := sql.NullFloat64{}
			if j < len(rec) && !model.IsMissing(rec[j]) {
				v = sql.NullFloat64{Float64: rec[j], Valid: true}
			}
			args[i+1] = v
		}
		if _, err = stmt.Exec(args...); err != nil {
			return zorros.Wrapf(err, "failed to insert record %v: %v", k, err.Error())
		}
	}
	if err = tx.Commit(); err != nil {
		return zorros.Trace(err)
	}
	zlog.Infof("stored %d records into table %v", len(ds), table)
	return nil
}

/*
Count returns count of records in the table
*/
func Count(db *sql.DB, table string) (n int, err error) {
	err = db.QueryRow("SELECT COUNT(*) FROM " + quote(table)).Scan(&n)
	if err != nil {
		err = zorros.Trace(err)
	}
	return
}

/*
Store writes train and test datasets of the connector into tables train and test
*/
func Store(path string, c *csvconn.Connector) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	layout := Layout{Columns: c.Columns(), Skip: c.Schema().IdPos()}
	if err = Write(db, "train", layout, c.Train()); err != nil {
		return err
	}
	if len(c.Test()) > 0 {
		return Write(db, "test", layout, c.Test())
	}
	return nil
}
