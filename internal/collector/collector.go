package collector

import (
	"bytes"
	"os/exec"

	"github.com/p0llard/vericert/internal/models"
)

// Default marker patterns, matched as extended regular expressions against
// each line of the scanned files.
const (
	DefaultAdmittedPattern = "Admitted"
	DefaultTheoremsPattern = "Theorem|Lemma|Remark"
	DefaultQedPattern      = "Qed|Defined"
)

// Patterns holds the three marker patterns used for a scan.
type Patterns struct {
	Admitted string
	Theorems string
	Qed      string
}

// DefaultPatterns returns the standard Coq proof-marker patterns.
func DefaultPatterns() Patterns {
	return Patterns{
		Admitted: DefaultAdmittedPattern,
		Theorems: DefaultTheoremsPattern,
		Qed:      DefaultQedPattern,
	}
}

// Collect runs one recursive text search per marker pattern over dir and
// returns the matching line counts. A failed search yields zero for that
// category rather than an error: grep exits non-zero when nothing matches,
// and the absence of proof markers is not a failure.
func Collect(dir string, patterns Patterns) models.KeywordCounts {
	return models.KeywordCounts{
		Admitted: countMatches(patterns.Admitted, dir),
		Theorems: countMatches(patterns.Theorems, dir),
		Qed:      countMatches(patterns.Qed, dir),
	}
}

// countMatches shells out to grep and counts the lines it prints. Any
// failure, including the tool being absent entirely, is coerced to zero.
func countMatches(pattern, dir string) int {
	out, err := exec.Command("grep", "-r", "-E", pattern, dir).Output()
	if err != nil {
		return 0
	}
	out = bytes.TrimRight(out, "\n")
	if len(out) == 0 {
		return 0
	}
	return bytes.Count(out, []byte("\n")) + 1
}
