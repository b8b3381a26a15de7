package csvconn

import (
	"go-ml.dev/pkg/csvconn/model"
	"go-ml.dev/pkg/zorros/zorros"
	"strings"
	"unicode/utf8"
)

/*
Mode defines how strictly the label column is required
*/
type Mode int

const (
	// Training requires the label column to be present in the header
	Training Mode = iota
	// Prediction allows data without the label column
	Prediction
)

func (m Mode) String() string {
	if m == Prediction {
		return "predict"
	}
	return "train"
}

/*
ParseMode converts mode name to Mode
*/
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "train", "training":
		return Training, nil
	case "predict", "prediction":
		return Prediction, nil
	}
	return Training, newError(BadParameter, "mode", nil)
}

const DefaultSeparator = ','

/*
Config is the resolved connector configuration
*/
type Config struct {
	Filename     string   // training file, required
	TestFilename string   // test file, optional
	Label        string   // label column
	Ignore       []string // ignored columns
	Id           string   // identifier column, records are keyed by row number if empty
	Separator    rune     // columns delimiter, comma by default
	Scale        bool     // min-max scale features to [0,1]
	Mode         Mode     // label enforcement mode
	Cache        string   // cache name for files accessed by url
}

func (cfg Config) ignored() map[string]bool {
	m := make(map[string]bool, len(cfg.Ignore))
	for _, s := range cfg.Ignore {
		m[s] = true
	}
	return m
}

/*
Resolve extracts connector configuration from the configuration object.
Parameters are looked up in the parameters.input object if it exists.
*/
func Resolve(p model.Params) (cfg Config, err error) {
	if in := p.Obj("parameters").Obj("input"); in != nil {
		p = in
	}
	if !p.Has("filename") {
		return cfg, newError(MissingParameter, "filename", nil)
	}
	str := func(name string, dflt string) string {
		if err != nil {
			return ""
		}
		s, e := p.String(name, dflt)
		if e != nil {
			err = newError(BadParameter, name, e)
		}
		return s
	}
	cfg.Filename = str("filename", "")
	cfg.TestFilename = str("test_filename", "")
	cfg.Label = str("label", "")
	cfg.Id = str("id", "")
	cfg.Cache = str("cache", "")
	sep := str("separator", "")
	mode := str("mode", "")
	if err != nil {
		return
	}
	if cfg.Filename == "" {
		return cfg, newError(MissingParameter, "filename", nil)
	}
	if cfg.Id != "" && cfg.Id == cfg.Label {
		return cfg, newError(BadParameter, "id", zorros.Errorf("id column %v is also the label", cfg.Id))
	}
	if cfg.Ignore, err = p.Strings("ignore"); err != nil {
		return cfg, newError(BadParameter, "ignore", err)
	}
	if cfg.Scale, err = p.Bool("scale", false); err != nil {
		return cfg, newError(BadParameter, "scale", err)
	}
	if cfg.Separator, err = separator(sep); err != nil {
		return
	}
	cfg.Mode, err = ParseMode(mode)
	return
}

func separator(s string) (rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return DefaultSeparator, nil
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return 0, newError(BadParameter, "separator", nil)
}
