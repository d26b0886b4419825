package parsley

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// collectDiagnostics installs a collecting diagnostic handler for the
// duration of the test and returns the collected slice.
func collectDiagnostics(t *testing.T) *[]Diagnostic {
	t.Helper()
	var collected []Diagnostic
	SetDiagnosticHandler(func(d Diagnostic) {
		collected = append(collected, d)
	})
	t.Cleanup(func() { SetDiagnosticHandler(nil) })
	return &collected
}

func TestQualifiersDoNotMutateBase(t *testing.T) {
	diags := collectDiagnostics(t)

	base := NewInt("number", "n", "The number option description.", false)
	withDefault := base.WithDefaultInt(4)
	withRange := base.WithIntRange(1, 20)

	assert.False(t, base.defaultDefined)
	assert.False(t, base.rangeDefined)

	assert.True(t, withDefault.defaultDefined)
	assert.Equal(t, 4, withDefault.defaultInt)
	assert.False(t, withDefault.rangeDefined)

	assert.True(t, withRange.rangeDefined)
	assert.Equal(t, 1, withRange.minInt)
	assert.Equal(t, 20, withRange.maxInt)
	assert.False(t, withRange.defaultDefined)

	assert.Empty(t, *diags)
}

func TestSecondaryDefaultWarnsAndIgnores(t *testing.T) {
	diags := collectDiagnostics(t)

	spec := NewInt("number", "n", "desc", false).WithDefaultInt(4).WithDefaultInt(9)

	assert.True(t, spec.defaultDefined)
	assert.Equal(t, 4, spec.defaultInt)

	assert.Len(t, *diags, 1)
	assert.Equal(t, "number", (*diags)[0].Option)
	assert.Contains(t, (*diags)[0].Message, "secondary default value")
	assert.Contains(t, (*diags)[0].Message, "the integer option 'number'")
}

func TestWrongKindDefaultWarnsAndIgnores(t *testing.T) {
	diags := collectDiagnostics(t)

	spec := NewStr("name", "s", "desc", false).WithDefaultInt(4)

	assert.False(t, spec.defaultDefined)
	assert.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "default integer value for the string option 'name' ignored.")
}

func TestWrongKindRangeWarnsAndIgnores(t *testing.T) {
	diags := collectDiagnostics(t)

	spec := NewStr("name", "s", "desc", false).WithIntRange(1, 9)

	assert.False(t, spec.rangeDefined)
	assert.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "integer range constraint")
}

func TestEnumDefaultMustBeAllowed(t *testing.T) {
	diags := collectDiagnostics(t)

	choices := []string{"aaa", "bbb", "ccc"}
	spec := NewEnum("mode", "m", "desc", choices, false).WithDefaultStr("zzz")

	assert.False(t, spec.defaultDefined)
	assert.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "is not an allowed value")
}

func TestDefaultOutOfRangeWarnsButSets(t *testing.T) {
	diags := collectDiagnostics(t)

	spec := NewInt("number", "n", "desc", false).WithIntRange(1, 20).WithDefaultInt(99)

	assert.True(t, spec.defaultDefined)
	assert.Equal(t, 99, spec.defaultInt)
	assert.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "out of range")
}

func TestRangeAfterDefaultWarnsButSets(t *testing.T) {
	diags := collectDiagnostics(t)

	spec := NewReal("ratio", "r", "desc", false).WithDefaultReal(5.0).WithRealRange(0.0, 1.0)

	assert.True(t, spec.rangeDefined)
	assert.Equal(t, 0.0, spec.minReal)
	assert.Equal(t, 1.0, spec.maxReal)
	assert.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "out of range")
}

func TestSecondaryRangeWarnsAndIgnores(t *testing.T) {
	diags := collectDiagnostics(t)

	spec := NewInt("number", "n", "desc", false).WithIntRange(1, 20).WithIntRange(5, 6)

	assert.Equal(t, 1, spec.minInt)
	assert.Equal(t, 20, spec.maxInt)
	assert.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "secondary range constraint")
}

func TestEnvVarQualifier(t *testing.T) {
	diags := collectDiagnostics(t)

	spec := NewStr("name", "s", "desc", false).WithEnvVar("THE_NAME")
	assert.True(t, spec.evDefined)
	assert.Equal(t, "THE_NAME", spec.evName)

	// Empty name is treated as not set.
	unset := NewStr("name", "s", "desc", false).WithEnvVar("")
	assert.False(t, unset.evDefined)

	// Once only.
	again := spec.WithEnvVar("OTHER")
	assert.Equal(t, "THE_NAME", again.evName)
	assert.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "secondary environment variable")
}

func TestPredefinedHelpAndVersion(t *testing.T) {
	help := Help()
	assert.Equal(t, "help", help.longName)
	assert.Equal(t, "h", help.shortName)
	assert.Equal(t, KindFlag, help.kind)
	assert.True(t, help.isSingleton)
	assert.True(t, help.defaultDefined)
	assert.False(t, help.isRequired)

	version := Version()
	assert.Equal(t, "version", version.longName)
	assert.Equal(t, "V", version.shortName)
	assert.True(t, version.isSingleton)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "-f, --flag", NewFlag("flag", "f", "desc").displayName())
	assert.Equal(t, "--flag", NewFlag("flag", "", "desc").displayName())
}

func TestRangeText(t *testing.T) {
	intSpec := NewInt("number", "n", "desc", false).WithIntRange(1, 20)
	assert.Equal(t, "1 to 20", intSpec.rangeText())

	realSpec := NewReal("ratio", "r", "desc", false).WithRealRange(0.0, 2.5)
	assert.Equal(t, "0.0 to 2.5", realSpec.rangeText())

	assert.Equal(t, "", NewInt("number", "n", "desc", false).rangeText())
	assert.Equal(t, "", NewFlag("flag", "f", "desc").rangeText())
}

func TestEnumSet(t *testing.T) {
	spec := NewEnum("mode", "m", "desc", []string{"aaa", "bbb", "ccc"}, false)
	assert.Equal(t, "(aaa, bbb, ccc)", spec.enumSet())
	assert.Equal(t, "(nil)", NewFlag("flag", "f", "desc").enumSet())
}

func TestEnumChoicesAreCopied(t *testing.T) {
	choices := []string{"aaa", "bbb"}
	spec := NewEnum("mode", "m", "desc", choices, false)
	choices[0] = "mutated"
	assert.Equal(t, "(aaa, bbb)", spec.enumSet())
}
