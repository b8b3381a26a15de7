package model

import (
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros/zorros"
	"gopkg.in/yaml.v3"
	"io/ioutil"
)

/*
ParamsFromYaml decodes YAML or JSON document into configuration object
*/
func ParamsFromYaml(input iokit.Input) (Params, error) {
	rd, err := input.Open()
	if err != nil {
		return nil, zorros.Trace(err)
	}
	defer rd.Close()
	bs, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	p := Params{}
	if err = yaml.Unmarshal(bs, &p); err != nil {
		return nil, zorros.Wrapf(err, "failed to decode parameters: %v", err.Error())
	}
	return p, nil
}

/*
LuckyParamsFromYaml decodes configuration object and panics on error
*/
func LuckyParamsFromYaml(input iokit.Input) Params {
	p, err := ParamsFromYaml(input)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return p
}
