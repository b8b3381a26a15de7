package csvconn

import (
	"go-ml.dev/pkg/csvconn/model"
	"go-ml.dev/pkg/zorros/zlog"
	"go-ml.dev/pkg/zorros/zorros"
	"math"
	"strconv"
	"strings"
)

/*
Role is a role of a source column
*/
type Role int

const (
	Feature Role = iota
	Label
	Id
	Ignored
)

func (r Role) String() string {
	switch r {
	case Label:
		return "label"
	case Id:
		return "id"
	case Ignored:
		return "ignored"
	}
	return "feature"
}

type column struct {
	name  string
	slot  int // record slot or -1 if ignored
	label bool
	id    bool
}

/*
Schema maps source columns to record slots. It's built once from the header line.
*/
type Schema struct {
	sep      string
	raw      []column
	columns  []string
	labelPos int
	idPos    int
}

/*
ParseHeader builds schema from the header line.
Ignored columns do not take a slot in records.
*/
func ParseHeader(line string, cfg Config) (*Schema, error) {
	s := &Schema{sep: string(cfg.Separator), labelPos: -1, idPos: -1}
	ignore := cfg.ignored()
	for _, name := range strings.Split(line, s.sep) {
		if ignore[name] {
			s.raw = append(s.raw, column{name: name, slot: -1})
			continue
		}
		c := column{name: name, slot: len(s.columns)}
		if cfg.Label != "" && name == cfg.Label && s.labelPos < 0 {
			c.label = true
			s.labelPos = c.slot
		}
		if cfg.Id != "" && name == cfg.Id && s.idPos < 0 {
			c.id = true
			s.idPos = c.slot
		}
		s.raw = append(s.raw, c)
		s.columns = append(s.columns, name)
	}
	if s.labelPos < 0 {
		if cfg.Mode == Training {
			return nil, newError(LabelColumnNotFound, cfg.Label, nil)
		}
		if cfg.Label != "" {
			zlog.Warningf("label column %v is not found", cfg.Label)
		}
	}
	if cfg.Id != "" && s.idPos < 0 {
		return nil, newError(IdColumnNotFound, cfg.Id, nil)
	}
	zlog.Infof("label=%v / pos=%v", cfg.Label, s.labelPos)
	zlog.Infof("CSV columns: %v", strings.Join(s.columns, " "))
	return s, nil
}

/*
Columns returns names of retained columns
*/
func (s *Schema) Columns() []string {
	return append([]string(nil), s.columns...)
}

/*
LabelPos returns record slot of the label or -1
*/
func (s *Schema) LabelPos() int {
	return s.labelPos
}

/*
IdPos returns record slot of the id column or -1
*/
func (s *Schema) IdPos() int {
	return s.idPos
}

/*
Roles returns role of every source column in the header order
*/
func (s *Schema) Roles() []Role {
	r := make([]Role, len(s.raw))
	for i, c := range s.raw {
		switch {
		case c.slot < 0:
			r[i] = Ignored
		case c.label:
			r[i] = Label
		case c.id:
			r[i] = Id
		default:
			r[i] = Feature
		}
	}
	return r
}

/*
FeatureSlots returns record slots which are neither label nor id
*/
func (s *Schema) FeatureSlots() []int {
	r := make([]int, 0, len(s.columns))
	for j := range s.columns {
		if j != s.labelPos && j != s.idPos {
			r = append(r, j)
		}
	}
	return r
}

/*
Row is a parsed data line
*/
type Row struct {
	Values []float64 // one value per schema column, model.Missing for non-numeric values
	Id     string    // raw value of the id column
}

/*
ParseRow splits the data line and converts its values to numbers.
Non-numeric and infinite values become model.Missing.
The id column value is kept as is and its slot holds model.Missing.
*/
func (s *Schema) ParseRow(line string) (Row, error) {
	tokens := strings.Split(line, s.sep)
	if len(tokens) != len(s.raw) {
		return Row{}, newError(RowWidthMismatch, "", zorros.Errorf("row has %d columns but header has %d", len(tokens), len(s.raw)))
	}
	row := Row{Values: make([]float64, len(s.columns))}
	for i, tok := range tokens {
		c := s.raw[i]
		if c.slot < 0 {
			continue
		}
		if c.id {
			row.Id = tok
			if !c.label {
				row.Values[c.slot] = model.Missing
				continue
			}
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil || math.IsInf(v, 0) {
			v = model.Missing
		}
		row.Values[c.slot] = v
	}
	return row, nil
}
