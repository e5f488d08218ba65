package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lex := Default()

	assert.Greater(t, lex.CommonCount(), 500, "embedded common baseline should hold the core sight vocabulary")
	assert.Greater(t, lex.AcademicCount(), 40)

	assert.True(t, lex.IsCommon("the"))
	assert.True(t, lex.IsCommon("because"))
	assert.False(t, lex.IsCommon("methodology"))

	assert.True(t, lex.IsAcademic("analysis"))
	assert.True(t, lex.IsAcademic("hypothesis"))
	assert.False(t, lex.IsAcademic("the"))
}

func TestNew_NormalizesEntries(t *testing.T) {
	lex := New([]string{"The", " Cat ", "DOG"}, []string{"Analysis"})

	assert.True(t, lex.IsCommon("the"))
	assert.True(t, lex.IsCommon("cat"))
	assert.True(t, lex.IsCommon("dog"))
	assert.True(t, lex.IsAcademic("analysis"))

	// Membership tests expect lowercased tokens; the original casing is gone.
	assert.False(t, lex.IsCommon("The"))
}

func TestNew_DropsNonAlphaEntries(t *testing.T) {
	lex := New([]string{"don't", "covid19", "a-b", "", "plain"}, nil)

	assert.Equal(t, 1, lex.CommonCount())
	assert.True(t, lex.IsCommon("plain"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `common:
  - the
  - cat
  - dog
academic:
  - analysis
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lex, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, lex.CommonCount())
	assert.Equal(t, 1, lex.AcademicCount())
	assert.True(t, lex.IsCommon("cat"))
	assert.True(t, lex.IsAcademic("analysis"))

	// The file replaces the defaults wholesale.
	assert.False(t, lex.IsCommon("because"))
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_NoCommonWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("academic:\n  - analysis\n"), 0644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "no common words")
}
