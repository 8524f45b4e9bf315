package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// withVersion swaps the build version for one test.
func withVersion(t *testing.T, v string) {
	t.Helper()

	original := Version
	Version = v
	resetParsedVersion()
	t.Cleanup(func() {
		Version = original
		resetParsedVersion()
	})
}

func TestParsed(t *testing.T) {
	withVersion(t, "1.2.3")
	assert.Equal(t, "1.2.3", Parsed().String())

	withVersion(t, "dev")
	assert.Nil(t, Parsed())
}

func TestIsDevBuild(t *testing.T) {
	withVersion(t, "dev")
	assert.True(t, IsDevBuild())

	withVersion(t, "0.3.0")
	assert.False(t, IsDevBuild())
}

func TestCompare(t *testing.T) {
	withVersion(t, "1.2.0")

	assert.Equal(t, -1, Compare("1.3.0"))
	assert.Equal(t, 0, Compare("1.2.0"))
	assert.Equal(t, 1, Compare("1.1.9"))
	assert.Equal(t, 0, Compare("not-a-version"))
}

func TestMeetsMinimum(t *testing.T) {
	withVersion(t, "1.2.0")
	assert.True(t, MeetsMinimum("1.2.0"))
	assert.True(t, MeetsMinimum("1.0.0"))
	assert.False(t, MeetsMinimum("2.0.0"))

	// Dev builds always pass the gate.
	withVersion(t, "dev")
	assert.True(t, MeetsMinimum("99.0.0"))
}
