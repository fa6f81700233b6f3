package store

import "os"

// writeTestFile writes literal content for dump-parsing tests.
func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
