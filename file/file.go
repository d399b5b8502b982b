// Package file - file.go
// A single scoped read used only by the `exec` built-in. Adapted from the
// teacher's file.FileObject, which exposed a full stateful handle API
// (fopen/fclose/fread/fwrite/fseek/ftell) to script code; spec.md §5
// permits exactly one open-read-close acquisition with no handle escaping
// script code, so no file handle is ever exposed to Libra source at all.
/*
File    : libra/file/file.go
*/
package file

import "os"

// ReadAll opens path, reads it fully, and closes it before returning.
func ReadAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
