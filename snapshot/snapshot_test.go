package snapshot

import (
	"database/sql"
	"go-ml.dev/pkg/csvconn/csvconn"
	"go-ml.dev/pkg/csvconn/model"
	"gotest.tools/assert"
	"io/ioutil"
	"path/filepath"
	"testing"
)

func Test_WriteCount(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "write.db"))
	assert.NilError(t, err)
	defer db.Close()

	ds := model.Dataset{
		"a": {1, 2, 3},
		"b": {4, model.Missing, 6},
	}
	layout := Layout{Columns: []string{"x", "y \"q\"", "label"}, Skip: -1}
	assert.NilError(t, Write(db, "train", layout, ds))
	n, err := Count(db, "train")
	assert.NilError(t, err)
	assert.Assert(t, n == 2)

	var y sql.NullFloat64
	assert.NilError(t, db.QueryRow(`SELECT "y ""q""" FROM train WHERE _key = 'b'`).Scan(&y))
	assert.Assert(t, !y.Valid)
	assert.NilError(t, db.QueryRow(`SELECT "y ""q""" FROM train WHERE _key = 'a'`).Scan(&y))
	assert.Assert(t, y.Valid && y.Float64 == 2)

	// table is replaced
	assert.NilError(t, Write(db, "train", layout, model.Dataset{"c": {0, 0, 0}}))
	n, err = Count(db, "train")
	assert.NilError(t, err)
	assert.Assert(t, n == 1)
}

func Test_WriteSkipsIdSlot(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "skip.db"))
	assert.NilError(t, err)
	defer db.Close()
	ds := model.Dataset{"k1": {model.Missing, 5, 1}}
	assert.NilError(t, Write(db, "t", Layout{Columns: []string{"key", "a", "label"}, Skip: 0}, ds))
	var key string
	var a, label float64
	assert.NilError(t, db.QueryRow(`SELECT _key, a, label FROM t`).Scan(&key, &a, &label))
	assert.Assert(t, key == "k1" && a == 5 && label == 1)
}

func Test_Store(t *testing.T) {
	dir := t.TempDir()
	train := filepath.Join(dir, "train.csv")
	test := filepath.Join(dir, "test.csv")
	assert.NilError(t, ioutil.WriteFile(train, []byte("id,a,label\nr1,1,0\nr2,2,1\nr3,3,1\n"), 0644))
	assert.NilError(t, ioutil.WriteFile(test, []byte("id,a,label\nt1,4,0\n"), 0644))
	c := csvconn.LuckyLoad(model.Params{"filename": train, "test_filename": test, "label": "label", "id": "id", "scale": true})

	path := filepath.Join(dir, "snapshot.db")
	assert.NilError(t, Store(path, c))

	db, err := Open(path)
	assert.NilError(t, err)
	defer db.Close()
	n, err := Count(db, "train")
	assert.NilError(t, err)
	assert.Assert(t, n == 3)
	n, err = Count(db, "test")
	assert.NilError(t, err)
	assert.Assert(t, n == 1)
	var a float64
	assert.NilError(t, db.QueryRow(`SELECT a FROM train WHERE _key = 'r2'`).Scan(&a))
	assert.Assert(t, a == 0.5)
}

func Test_CountMissingTable(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	assert.NilError(t, err)
	defer db.Close()
	_, err = Count(db, "nothing")
	assert.ErrorContains(t, err, "no such table")
}
