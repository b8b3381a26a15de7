package csvconn

import (
	"go-ml.dev/pkg/csvconn/fu"
	"go-ml.dev/pkg/csvconn/model"
	"go-ml.dev/pkg/zorros/zlog"
	"gonum.org/v1/gonum/floats"
)

/*
Bounds are per-slot minimum and maximum of the training data
*/
type Bounds struct {
	Min, Max []float64
}

/*
Defined returns true if bounds were computed
*/
func (b Bounds) Defined() bool {
	return len(b.Min) > 0
}

/*
Extend returns bounds including values
*/
func (b Bounds) Extend(values []float64) Bounds {
	if !b.Defined() {
		return Bounds{
			Min: append([]float64(nil), values...),
			Max: append([]float64(nil), values...),
		}
	}
	for j, v := range values {
		b.Min[j] = fu.Minnan(b.Min[j], v)
		b.Max[j] = fu.Maxnan(b.Max[j], v)
	}
	return b
}

/*
computeBounds reads all remaining rows of the training data
*/
func computeBounds(ls *lines, s *Schema) (b Bounds, err error) {
	err = ls.rows(s, func(r Row) error {
		b = b.Extend(r.Values)
		return nil
	})
	if err != nil {
		return Bounds{}, err
	}
	zlog.Infof("min/max scales:\n%v\n%v", b.Min, b.Max)
	return
}

/*
Scaler returns function scaling record values into [0,1] range.
Label and id slots and slots with degenerate bounds are left as is.
*/
func (b Bounds) Scaler(s *Schema) func([]float64) {
	if !b.Defined() {
		return func([]float64) {}
	}
	span := floats.SubTo(make([]float64, len(b.Max)), b.Max, b.Min)
	slots := []int{}
	for _, j := range s.FeatureSlots() {
		// NaN span means no value was seen
		if span[j] > 0 {
			slots = append(slots, j)
		}
	}
	return func(values []float64) {
		for _, j := range slots {
			if !model.IsMissing(values[j]) {
				values[j] = (values[j] - b.Min[j]) / span[j]
			}
		}
	}
}
