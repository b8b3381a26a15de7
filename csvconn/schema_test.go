package csvconn

import (
	"go-ml.dev/pkg/csvconn/model"
	"gotest.tools/assert"
	"testing"
)

func Test_ParseHeader(t *testing.T) {
	s, err := ParseHeader("a,b,c,label", Config{Label: "label", Separator: ','})
	assert.NilError(t, err)
	assert.DeepEqual(t, s.Columns(), []string{"a", "b", "c", "label"})
	assert.Assert(t, s.LabelPos() == 3)
	assert.Assert(t, s.IdPos() == -1)
	assert.DeepEqual(t, s.FeatureSlots(), []int{0, 1, 2})
}

func Test_ParseHeaderIgnore(t *testing.T) {
	s, err := ParseHeader("a,b,label", Config{Label: "label", Ignore: []string{"b"}, Separator: ','})
	assert.NilError(t, err)
	assert.DeepEqual(t, s.Columns(), []string{"a", "label"})
	assert.Assert(t, s.LabelPos() == 1)
	assert.DeepEqual(t, s.Roles(), []Role{Feature, Ignored, Label})
}

func Test_ParseHeaderRoles(t *testing.T) {
	s, err := ParseHeader("key;x;skip;y", Config{Label: "y", Id: "key", Ignore: []string{"skip"}, Separator: ';'})
	assert.NilError(t, err)
	assert.DeepEqual(t, s.Roles(), []Role{Id, Feature, Ignored, Label})
	assert.Assert(t, s.IdPos() == 0)
	assert.Assert(t, s.LabelPos() == 2)
	assert.DeepEqual(t, s.FeatureSlots(), []int{1})
	assert.Assert(t, Ignored.String() == "ignored")
}

func Test_ParseHeaderFirstLabelWins(t *testing.T) {
	s, err := ParseHeader("label,a,label", Config{Label: "label", Separator: ','})
	assert.NilError(t, err)
	assert.Assert(t, s.LabelPos() == 0)
}

func Test_ParseHeaderLabelNotFound(t *testing.T) {
	_, err := ParseHeader("a,b,c", Config{Label: "label", Separator: ','})
	assert.Assert(t, IsKind(err, LabelColumnNotFound))
	assert.ErrorContains(t, err, "cannot find label column label")

	_, err = ParseHeader("a,b,label", Config{Label: "label", Ignore: []string{"label"}, Separator: ','})
	assert.Assert(t, IsKind(err, LabelColumnNotFound))
}

func Test_ParseHeaderPredictionMode(t *testing.T) {
	s, err := ParseHeader("a,b,c", Config{Label: "label", Separator: ',', Mode: Prediction})
	assert.NilError(t, err)
	assert.Assert(t, s.LabelPos() == -1)
	assert.DeepEqual(t, s.FeatureSlots(), []int{0, 1, 2})
}

func Test_ParseHeaderIdNotFound(t *testing.T) {
	_, err := ParseHeader("a,label", Config{Label: "label", Id: "key", Separator: ','})
	assert.Assert(t, IsKind(err, IdColumnNotFound))
}

func Test_ParseRow(t *testing.T) {
	s, err := ParseHeader("key,a,b,label", Config{Label: "label", Id: "key", Ignore: []string{"b"}, Separator: ','})
	assert.NilError(t, err)
	r, err := s.ParseRow("r1,1.5,100,2")
	assert.NilError(t, err)
	assert.Assert(t, r.Id == "r1")
	assert.Assert(t, len(r.Values) == 3)
	assert.Assert(t, model.IsMissing(r.Values[0]))
	assert.Assert(t, r.Values[1] == 1.5)
	assert.Assert(t, r.Values[2] == 2)
}

func Test_ParseRowNotANumber(t *testing.T) {
	s, err := ParseHeader("a,b,c,label", Config{Label: "label", Separator: ','})
	assert.NilError(t, err)
	r, err := s.ParseRow("1,red,3,0")
	assert.NilError(t, err)
	assert.Assert(t, len(r.Values) == 4)
	assert.Assert(t, r.Values[0] == 1)
	assert.Assert(t, model.IsMissing(r.Values[1]))
	assert.Assert(t, r.Values[2] == 3)
	assert.Assert(t, r.Id == "")
}

func Test_ParseRowWidthMismatch(t *testing.T) {
	s, err := ParseHeader("a,label", Config{Label: "label", Separator: ','})
	assert.NilError(t, err)
	_, err = s.ParseRow("1,2,3")
	assert.Assert(t, IsKind(err, RowWidthMismatch))
	_, err = s.ParseRow("1")
	assert.Assert(t, IsKind(err, RowWidthMismatch))
}

func Test_ParseRowInfinity(t *testing.T) {
	s, err := ParseHeader("a,b,c,label", Config{Label: "label", Separator: ','})
	assert.NilError(t, err)
	r, err := s.ParseRow("inf,-Infinity,1e400,0")
	assert.NilError(t, err)
	assert.Assert(t, model.IsMissing(r.Values[0]))
	assert.Assert(t, model.IsMissing(r.Values[1]))
	assert.Assert(t, model.IsMissing(r.Values[2]))
	assert.Assert(t, r.Values[3] == 0)
}

func Test_ParseRowBlankLine(t *testing.T) {
	s, err := ParseHeader("a,label", Config{Label: "label", Separator: ','})
	assert.NilError(t, err)
	_, err = s.ParseRow("")
	assert.Assert(t, IsKind(err, RowWidthMismatch))
}
