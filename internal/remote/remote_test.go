package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p0llard/vericert/internal/collector"
)

func TestScan_InvalidRepo(t *testing.T) {
	for _, repo := range []string{"", "vericert", "/vericert", "p0llard/"} {
		_, err := Scan(context.Background(), Options{
			Repo:     repo,
			Patterns: collector.DefaultPatterns(),
		})
		require.Error(t, err, "repo %q", repo)
		assert.Contains(t, err.Error(), "invalid repository")
	}
}

func TestScan_BadPattern(t *testing.T) {
	_, err := Scan(context.Background(), Options{
		Repo:     "p0llard/vericert",
		Patterns: collector.Patterns{Admitted: "(", Theorems: "T", Qed: "Q"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile admitted pattern")
}

func TestCountLines(t *testing.T) {
	m, err := compileMatchers(collector.DefaultPatterns())
	require.NoError(t, err)

	counts := countLines(`Theorem add_comm : forall a b, a + b = b + a.
Proof.
Admitted.
Lemma trivial : True.
Proof. exact I. Qed.
Remark aux : True.
Proof. exact I. Defined.
`, m)

	assert.Equal(t, 1, counts.Admitted)
	assert.Equal(t, 3, counts.Theorems)
	assert.Equal(t, 2, counts.Qed)
}

func TestCountLines_LineNotOccurrenceSemantics(t *testing.T) {
	m, err := compileMatchers(collector.DefaultPatterns())
	require.NoError(t, err)

	// Two markers on one line count once per category for that line.
	counts := countLines("Lemma a. Lemma b. Qed. Qed.\n", m)
	assert.Equal(t, 1, counts.Theorems)
	assert.Equal(t, 1, counts.Qed)
}

func TestIncludePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		globs []string
		want  bool
	}{
		{"no globs includes everything", "src/Verilog.v", nil, true},
		{"matching glob", "src/hls/Verilog.v", []string{"src/**/*.v"}, true},
		{"non-matching glob", "docs/intro.md", []string{"src/**/*.v"}, false},
		{"second glob matches", "theories/Main.v", []string{"src/**/*.v", "theories/*.v"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, includePath(tt.path, tt.globs))
		})
	}
}
