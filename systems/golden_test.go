package systems

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGoldenFixtures renders the values listed in testdata/golden and
// compares byte-for-byte. Each fixture file is named after a catalog
// system; lines are "value<TAB>expected". The same fixtures double as a
// determinism check: every file is rendered twice.
func TestGoldenFixtures(t *testing.T) {
	goldenDir := filepath.Join("testdata", "golden")
	entries, err := os.ReadDir(goldenDir)
	require.NoError(t, err)

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".txt")
		t.Run(name, func(t *testing.T) {
			id, ok := FromName(name)
			require.True(t, ok, "fixture %q does not match a catalog system", name)

			f, err := os.Open(filepath.Join(goldenDir, entry.Name()))
			require.NoError(t, err)
			defer f.Close()

			scanner := bufio.NewScanner(f)
			line := 0
			for scanner.Scan() {
				line++
				text := scanner.Text()
				if text == "" || strings.HasPrefix(text, "#") {
					continue
				}
				value, expected, found := strings.Cut(text, "\t")
				require.True(t, found, "line %d: missing tab", line)

				n, err := strconv.ParseUint(value, 10, 64)
				require.NoError(t, err, "line %d", line)

				got, err := id.Apply(n)
				require.NoError(t, err, "line %d: Apply(%d)", line, n)
				require.Equal(t, expected, got, "line %d: Apply(%d)", line, n)

				again, err := id.Apply(n)
				require.NoError(t, err)
				require.Equal(t, got, again, "line %d: non-deterministic output", line)
			}
			require.NoError(t, scanner.Err())
		})
	}
}
