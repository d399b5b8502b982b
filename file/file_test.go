/*
File    : libra/file/file_test.go
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadAllReturnsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.lb")
	assert.Nil(t, os.WriteFile(path, []byte("print(1)"), 0o644))

	got, err := ReadAll(path)
	assert.Nil(t, err)
	assert.Equal(t, "print(1)", got)
}

func TestReadAllMissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing.lb"))
	assert.NotNil(t, err)
}
