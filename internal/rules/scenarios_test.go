package rules

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sunholo/hminfer/internal/errs"
	"github.com/sunholo/hminfer/internal/types"
)

// termFixture mirrors types.Term for YAML decoding: a bare constructor
// name plus optional argument ids.
type termFixture struct {
	Con  string     `yaml:"con"`
	Args []types.ID `yaml:"args"`
}

func (tf termFixture) term() types.Term {
	return types.Term{Con: tf.Con, Args: tf.Args}
}

type specifyFixture struct {
	ID   types.ID   `yaml:"id"`
	Con  string     `yaml:"con"`
	Args []types.ID `yaml:"args"`
}

type scenarioFixture struct {
	Name        string                   `yaml:"name"`
	Specify     []specifyFixture         `yaml:"specify"`
	Equal       [][2]types.ID            `yaml:"equal"`
	InstanceOf  [][2]types.ID            `yaml:"instance_of"`
	Expect      map[types.ID]termFixture `yaml:"expect"`
	ExpectError string                   `yaml:"expectError"`
}

// TestScenariosFromFixtures runs every declarative scenario in
// testdata/scenarios.yaml through Rules.Infer, following
// internal/eval_harness/spec.go's pattern of loading test cases from a
// YAML fixture rather than hand-writing each as Go source.
func TestScenariosFromFixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenarioFixture
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			r := New()
			for _, s := range sc.Specify {
				r.Specify(s.ID, types.Term{Con: s.Con, Args: s.Args})
			}
			for _, e := range sc.Equal {
				r.Equal(e[0], e[1])
			}
			for _, g := range sc.InstanceOf {
				r.InstanceOf(g[0], g[1])
			}

			res, err := r.Infer()
			if sc.ExpectError != "" {
				require.Error(t, err)
				var mismatch *errs.IncompatibleTypes
				if assert.ErrorAs(t, err, &mismatch) {
					assert.Equal(t, sc.ExpectError, errs.IC001)
				}
				return
			}
			require.NoError(t, err)
			for id, want := range sc.Expect {
				got, ok := res.GetTypeByID(id)
				require.True(t, ok, "expected %s to have a type", id)
				assert.Equal(t, want.term(), got, "id %s", id)
			}
		})
	}
}
