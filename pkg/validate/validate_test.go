// pkg/validate/validate_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test check derivation and pass/warn/fail evaluation

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotmerge/pkg/testutil"
	"github.com/arthur-debert/dotmerge/pkg/types"
)

func TestExpectedChecks(t *testing.T) {
	targets := []types.Target{{Path: "/h/.zshrc", Operations: []types.Operation{
		types.FragmentOp(types.Fragment{Content: "export NVM_DIR=x", Marker: "NVM_DIR"}),
		types.FragmentOp(types.Fragment{Content: "\n  alias ll='ls -la'\nalias la='ls -a'"}),
		types.FieldOp(types.StructuredField{Name: "plugins", Kind: types.ValueSet}),
		types.FragmentOp(types.Fragment{Content: "   \n"}),
	}}}

	checks := ExpectedChecks(targets)

	require.Len(t, checks, 3)
	assert.Equal(t, "NVM_DIR", checks[0].Marker)
	assert.Equal(t, "alias ll='ls -la'", checks[1].Marker)
	assert.Equal(t, "plugins=", checks[2].Marker)
	assert.Equal(t, "plugins (set)", checks[2].Label)
}

func TestValidator_Run(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteFile(".zshrc", "# export PYENV_ROOT=old\nexport NVM_DIR=\"$HOME/.nvm\"\nplugins=(git)\n")

	tests := []struct {
		name   string
		check  Check
		status Status
		line   int
	}{
		{"active line", Check{Path: path, Marker: "NVM_DIR"}, StatusPass, 2},
		{"commented out", Check{Path: path, Marker: "PYENV_ROOT"}, StatusWarn, 1},
		{"absent", Check{Path: path, Marker: "ZSH_THEME="}, StatusFail, 0},
		{"missing file", Check{Path: env.Path(".zprofile"), Marker: "brew"}, StatusFail, 0},
		{"comment marker", Check{Path: path, Marker: "# export PYENV_ROOT"}, StatusPass, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := New(env.FS, types.NewRunContext(false)).Run([]Check{tt.check})
			require.Len(t, results, 1)
			assert.Equal(t, tt.status, results[0].Status)
			assert.Equal(t, tt.line, results[0].Line)
		})
	}
}

func TestValidator_Counters(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteFile(".zshrc", "A=1\n#B=2\n")
	rc := types.NewRunContext(false)

	New(env.FS, rc).Run([]Check{
		{Path: path, Marker: "A="},
		{Path: path, Marker: "B="},
		{Path: path, Marker: "C="},
		{Path: path, Marker: "A"},
	})

	assert.Equal(t, types.Counters{Pass: 2, Warn: 1, Fail: 1}, rc.Counters)
}

func TestValidator_WorklistRoundTrip(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(".zshrc", "ZSH_THEME=\"agnoster\"\nplugins=(git)\nexport NVM_DIR=1\nexport PYENV_ROOT=1\nalias ll='ls -la'\n")
	rc := types.NewRunContext(false)

	checks := ExpectedChecks([]types.Target{{Path: env.Path(".zshrc"), Operations: testutil.ZshrcWorklist()}})
	New(env.FS, rc).Run(checks)

	assert.Equal(t, types.Counters{Pass: 5}, rc.Counters)
}
