package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Arith.v"), `Theorem add_comm : forall a b, a + b = b + a.
Proof.
Admitted.

Lemma add_assoc : forall a b c, a + (b + c) = (a + b) + c.
Proof.
  induction a; auto.
Qed.
`)
	writeFile(t, filepath.Join(dir, "sub", "Div.v"), `Remark div_self : forall a, a <> 0 -> a / a = 1.
Proof.
Defined.
`)

	counts := Collect(dir, DefaultPatterns())
	assert.Equal(t, 1, counts.Admitted)
	assert.Equal(t, 3, counts.Theorems)
	assert.Equal(t, 2, counts.Qed)
}

func TestCollect_EmptyDirectory(t *testing.T) {
	counts := Collect(t.TempDir(), DefaultPatterns())
	assert.Equal(t, 0, counts.Admitted)
	assert.Equal(t, 0, counts.Theorems)
	assert.Equal(t, 0, counts.Qed)
}

func TestCollect_MissingDirectory(t *testing.T) {
	// The search tool fails outright; every count coerces to zero.
	counts := Collect(filepath.Join(t.TempDir(), "does-not-exist"), DefaultPatterns())
	assert.Equal(t, 0, counts.Admitted)
	assert.Equal(t, 0, counts.Theorems)
	assert.Equal(t, 0, counts.Qed)
}

func TestCollect_CustomPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Proofs.v"), `Theorem one : True.
Proof. exact I. Qed.
Theorem two : True.
Proof. Admitted.
sorry
`)

	counts := Collect(dir, Patterns{
		Admitted: "sorry",
		Theorems: "Theorem",
		Qed:      "Qed",
	})
	assert.Equal(t, 1, counts.Admitted)
	assert.Equal(t, 2, counts.Theorems)
	assert.Equal(t, 1, counts.Qed)
}

func TestCountMatches_CountsLinesNotOccurrences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Multi.v"), "Lemma a. Lemma b.\nLemma c.\n")

	assert.Equal(t, 2, countMatches("Lemma", dir))
}
