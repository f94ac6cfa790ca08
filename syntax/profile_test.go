package syntax

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := Default()
	require.Equal(t, "rust", p.Name)
	require.True(t, p.IsPrimary("fn"))
	require.True(t, p.IsPrimary("let"))
	require.True(t, p.IsSecondary("bool"))
	require.False(t, p.IsPrimary("banana"))
	require.False(t, p.IsSecondary("fn"))
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.yaml")
	data := `
name: go
primary:
  - func
  - return
secondary:
  - string
  - error
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	require.Equal(t, "go", p.Name)
	require.True(t, p.IsPrimary("func"))
	require.True(t, p.IsSecondary("error"))
	require.False(t, p.IsPrimary("fn"))
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary: [a, b"), 0644))
	_, err = LoadProfile(path)
	require.Error(t, err)
}
