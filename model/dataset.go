package model

import (
	"go-ml.dev/pkg/csvconn/fu"
	"gonum.org/v1/gonum/mat"
	"math"
	"sort"
)

/*
Missing is a placeholder stored in a record slot when the source value is not a number
*/
var Missing = math.NaN()

/*
IsMissing returns true if v is the Missing placeholder
*/
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

/*
Dataset is a set of numeric records addressed by a record key
*/
type Dataset map[string][]float64

/*
Keys returns sorted record keys
*/
func (ds Dataset) Keys() []string {
	keys := make([]string, 0, len(ds))
	for k := range ds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

/*
Dense copies the slots enumerated by columns of records enumerated by keys into a matrix,
a row of the matrix is a record
*/
func (ds Dataset) Dense(keys []string, columns []int) *mat.Dense {
	if len(keys) == 0 || len(columns) == 0 {
		return &mat.Dense{}
	}
	rows := make([][]float64, len(keys))
	for i, k := range keys {
		rec := ds[k]
		r := make([]float64, len(columns))
		for j, c := range columns {
			if c < len(rec) {
				r[j] = rec[c]
			} else {
				r[j] = Missing
			}
		}
		rows[i] = r
	}
	return mat.NewDense(len(keys), len(columns), fu.Flatnr(rows))
}
