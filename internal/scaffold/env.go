package scaffold

import (
	"fmt"
	"os"
	"strings"
)

// patchEnvFile rewrites known KEY=VALUE pairs in an env file, leaving every
// other line untouched. Keys absent from pairs keep their template values.
func patchEnvFile(path string, pairs map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if !strings.Contains(line, "=") {
			continue
		}
		key, _, _ := strings.Cut(strings.TrimSpace(line), "=")
		if value, ok := pairs[key]; ok {
			lines[i] = fmt.Sprintf("%s=%s", key, value)
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
