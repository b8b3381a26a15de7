/*
Package csvconn loads delimited text files into numeric datasets.

The first line of the training file is a header naming the columns. Every next line
becomes a record keyed by the id column value or by the line number. Features may be
min-max scaled by bounds computed from the training file, the same bounds are
applied to the test file.
*/
package csvconn

import (
	"go-ml.dev/pkg/csvconn/model"
	"go-ml.dev/pkg/zorros/zlog"
	"go-ml.dev/pkg/zorros/zorros"
	"gonum.org/v1/gonum/mat"
	"sort"
	"strconv"
)

/*
Stats describes loaded file
*/
type Stats struct {
	Lines      int            // count of data lines
	Duplicates int            // count of lines dropped because of repeated key
	Missing    map[string]int // count of non-numeric values per column
}

func (st Stats) report(path string) {
	zlog.Infof("read %d lines from %v", st.Lines, path)
	if st.Duplicates > 0 {
		zlog.Warningf("%d lines of %v have repeated keys and were dropped", st.Duplicates, path)
	}
	names := make([]string, 0, len(st.Missing))
	for k := range st.Missing {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		zlog.Infof("not a number: %d values of column %v in %v", st.Missing[k], k, path)
	}
}

/*
Connector holds datasets loaded from CSV files
*/
type Connector struct {
	config     Config
	schema     *Schema
	bounds     Bounds
	train      model.Dataset
	test       model.Dataset
	trainStats Stats
	testStats  Stats
}

var _ model.InputConnector = (*Connector)(nil)

/*
Load resolves configuration and loads datasets
*/
func Load(p model.Params) (*Connector, error) {
	cfg, err := Resolve(p)
	if err != nil {
		return nil, err
	}
	return LoadConfig(cfg)
}

/*
LuckyLoad loads datasets and panics on error
*/
func LuckyLoad(p model.Params) *Connector {
	c, err := Load(p)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return c
}

/*
LoadConfig loads training and test datasets. No connector is returned on failure.
*/
func LoadConfig(cfg Config) (*Connector, error) {
	if cfg.Separator == 0 {
		cfg.Separator = DefaultSeparator
	}
	c := &Connector{config: cfg, train: model.Dataset{}, test: model.Dataset{}}
	if err := c.loadTrain(); err != nil {
		return nil, err
	}
	if cfg.TestFilename != "" {
		if err := c.loadTest(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Connector) loadTrain() (err error) {
	src := newSource(c.config.Filename, c.config.Cache)
	defer src.Close()
	ls, err := src.open()
	if err != nil {
		return
	}
	ls.Scan()
	if err = ls.failed(); err != nil {
		return
	}
	if c.schema, err = ParseHeader(ls.Text(), c.config); err != nil {
		return
	}
	if c.config.Scale {
		if c.bounds, err = computeBounds(ls, c.schema); err != nil {
			return
		}
		if ls, err = src.rewind(); err != nil {
			return
		}
		ls.Scan() // header
	}
	if c.trainStats, err = c.store(ls, c.train, c.bounds.Scaler(c.schema)); err != nil {
		return
	}
	c.trainStats.report(c.config.Filename)
	return
}

func (c *Connector) loadTest() (err error) {
	src := newSource(c.config.TestFilename, c.config.Cache)
	defer src.Close()
	ls, err := src.open()
	if err != nil {
		return
	}
	ls.Scan() // header
	if c.testStats, err = c.store(ls, c.test, c.bounds.Scaler(c.schema)); err != nil {
		return
	}
	c.testStats.report(c.config.TestFilename)
	return
}

func (c *Connector) store(ls *lines, ds model.Dataset, scale func([]float64)) (st Stats, err error) {
	st.Missing = map[string]int{}
	idPos := c.schema.IdPos()
	err = ls.rows(c.schema, func(r Row) error {
		st.Lines++
		for j, v := range r.Values {
			if j != idPos && model.IsMissing(v) {
				st.Missing[c.schema.columns[j]]++
			}
		}
		scale(r.Values)
		key := r.Id
		if c.config.Id == "" {
			key = strconv.Itoa(st.Lines)
		}
		if _, exists := ds[key]; exists {
			st.Duplicates++
			zlog.Warningf("repeated key %q at %v:%d", key, ls.path, ls.line)
			return nil
		}
		ds[key] = r.Values
		return nil
	})
	return
}

/*
Train returns the training dataset
*/
func (c *Connector) Train() model.Dataset {
	return c.train
}

/*
Test returns the test dataset, it's empty if no test file is configured
*/
func (c *Connector) Test() model.Dataset {
	return c.test
}

func (c *Connector) Columns() []string {
	return c.schema.Columns()
}

func (c *Connector) LabelPos() int {
	return c.schema.LabelPos()
}

func (c *Connector) Schema() *Schema {
	return c.schema
}

func (c *Connector) Config() Config {
	return c.config
}

/*
Bounds returns scaling bounds, they are not defined if scaling is disabled
*/
func (c *Connector) Bounds() Bounds {
	return c.bounds
}

func (c *Connector) TrainStats() Stats {
	return c.trainStats
}

func (c *Connector) TestStats() Stats {
	return c.testStats
}

/*
Size returns count of features: columns without label and id
*/
func (c *Connector) Size() int {
	return len(c.schema.FeatureSlots())
}

/*
Features returns feature values of the record
*/
func (c *Connector) Features(record []float64) []float64 {
	slots := c.schema.FeatureSlots()
	r := make([]float64, len(slots))
	for i, j := range slots {
		r[i] = record[j]
	}
	return r
}

/*
Label returns label value of the record or model.Missing if there is no label column
*/
func (c *Connector) Label(record []float64) float64 {
	if j := c.schema.LabelPos(); j >= 0 {
		return record[j]
	}
	return model.Missing
}

/*
Matrix returns features and labels of the dataset records ordered by key
*/
func (c *Connector) Matrix(ds model.Dataset) (keys []string, features, labels *mat.Dense) {
	keys = ds.Keys()
	features = ds.Dense(keys, c.schema.FeatureSlots())
	if j := c.schema.LabelPos(); j >= 0 {
		labels = ds.Dense(keys, []int{j})
	}
	return
}
