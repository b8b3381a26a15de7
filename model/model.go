package model

import (
	"go-ml.dev/pkg/zorros/zorros"
	"strconv"
)

/*
InputConnector is a source of numeric records feeding a learner.
Every record of Train and Test has one slot per column returned by Columns.
*/
type InputConnector interface {
	// Train returns the training dataset
	Train() Dataset
	// Test returns the test dataset, empty if no test data was configured
	Test() Dataset
	// Columns returns names of retained columns in the source order
	Columns() []string
	// LabelPos returns index of the label column in Columns or -1
	LabelPos() int
	// Size returns count of feature columns (without label and id)
	Size() int
}

/*
Params is a configuration object passed to connectors
*/
type Params map[string]interface{}

/*
Has returns true if the parameter is defined
*/
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt interface{}) interface{} {
	if v, ok := p[name]; ok && v != nil {
		return v
	}
	return dflt
}

/*
Obj returns nested configuration object or nil if it does not exist
*/
func (p Params) Obj(name string) Params {
	switch v := p[name].(type) {
	case Params:
		return v
	case map[string]interface{}:
		return Params(v)
	}
	return nil
}

func (p Params) String(name string, dflt string) (string, error) {
	switch v := p.Get(name, dflt).(type) {
	case string:
		return v, nil
	default:
		return "", zorros.Errorf("parameter `%v` must be a string, got %T", name, v)
	}
}

func (p Params) Bool(name string, dflt bool) (bool, error) {
	switch v := p.Get(name, dflt).(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, zorros.Errorf("parameter `%v` must be a boolean, got `%v`", name, v)
		}
		return b, nil
	default:
		return false, zorros.Errorf("parameter `%v` must be a boolean, got %T", name, v)
	}
}

/*
Strings returns list of strings, YAML/JSON decoded lists are accepted as well
*/
func (p Params) Strings(name string) ([]string, error) {
	switch v := p.Get(name, nil).(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []interface{}:
		r := make([]string, len(v))
		for i, x := range v {
			s, ok := x.(string)
			if !ok {
				return nil, zorros.Errorf("parameter `%v` must be a list of strings, element %d is %T", name, i, x)
			}
			r[i] = s
		}
		return r, nil
	default:
		return nil, zorros.Errorf("parameter `%v` must be a list of strings, got %T", name, v)
	}
}
