package remote

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/p0llard/vericert/internal/collector"
	"github.com/p0llard/vericert/internal/models"
)

const DefaultWorkerCount = 10

// Options configures a remote scan.
type Options struct {
	Repo     string   // "owner/name"
	Include  []string // path globs; empty means every blob
	Patterns collector.Patterns
	Token    string // optional GitHub token
}

// Scan counts proof markers across the blobs of a GitHub repository's
// default branch, as a drop-in alternative to scanning a local checkout.
// Blobs that fail to download are reported and skipped; API-level failures
// are fatal.
func Scan(ctx context.Context, opts Options) (models.KeywordCounts, error) {
	owner, name, ok := strings.Cut(opts.Repo, "/")
	if !ok || owner == "" || name == "" {
		return models.KeywordCounts{}, fmt.Errorf("invalid repository %q (want owner/name)", opts.Repo)
	}

	m, err := compileMatchers(opts.Patterns)
	if err != nil {
		return models.KeywordCounts{}, err
	}

	client := newClient(ctx, opts.Token)

	repo, _, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return models.KeywordCounts{}, fmt.Errorf("fetch repository %s: %w", opts.Repo, err)
	}
	branch := repo.GetDefaultBranch()

	tree, _, err := client.Git.GetTree(ctx, owner, name, branch, true)
	if err != nil {
		return models.KeywordCounts{}, fmt.Errorf("fetch tree %s@%s: %w", opts.Repo, branch, err)
	}

	var blobs []*github.TreeEntry
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		if includePath(entry.GetPath(), opts.Include) {
			blobs = append(blobs, entry)
		}
	}
	fmt.Printf("Scanning %d files from %s@%s...\n", len(blobs), opts.Repo, branch)

	// Worker pool for fetching blob contents
	jobs := make(chan *github.TreeEntry, len(blobs))
	results := make(chan blobResult, len(blobs))
	var wg sync.WaitGroup

	for i := 0; i < DefaultWorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range jobs {
				results <- countBlob(ctx, client, owner, name, entry, m)
			}
		}()
	}

	for _, entry := range blobs {
		jobs <- entry
	}
	close(jobs)

	wg.Wait()
	close(results)

	var counts models.KeywordCounts
	errCount := 0
	for r := range results {
		if r.err != nil {
			fmt.Printf("Error reading blob: %v\n", r.err)
			errCount++
			continue
		}
		counts.Admitted += r.counts.Admitted
		counts.Theorems += r.counts.Theorems
		counts.Qed += r.counts.Qed
	}
	if errCount > 0 {
		fmt.Printf("Scan complete. Skipped blobs: %d\n", errCount)
	}

	return counts, nil
}

func newClient(ctx context.Context, token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

type matchers struct {
	admitted *regexp.Regexp
	theorems *regexp.Regexp
	qed      *regexp.Regexp
}

func compileMatchers(p collector.Patterns) (matchers, error) {
	var m matchers
	var err error
	if m.admitted, err = regexp.Compile(p.Admitted); err != nil {
		return matchers{}, fmt.Errorf("compile admitted pattern: %w", err)
	}
	if m.theorems, err = regexp.Compile(p.Theorems); err != nil {
		return matchers{}, fmt.Errorf("compile theorems pattern: %w", err)
	}
	if m.qed, err = regexp.Compile(p.Qed); err != nil {
		return matchers{}, fmt.Errorf("compile qed pattern: %w", err)
	}
	return m, nil
}

type blobResult struct {
	counts models.KeywordCounts
	err    error
}

func countBlob(ctx context.Context, client *github.Client, owner, name string, entry *github.TreeEntry, m matchers) blobResult {
	blob, _, err := client.Git.GetBlob(ctx, owner, name, entry.GetSHA())
	if err != nil {
		return blobResult{err: fmt.Errorf("blob %s: %w", entry.GetPath(), err)}
	}

	content := blob.GetContent()
	if blob.GetEncoding() == "base64" {
		// The API wraps base64 payloads with newlines.
		raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content, "\n", ""))
		if err != nil {
			return blobResult{err: fmt.Errorf("decode blob %s: %w", entry.GetPath(), err)}
		}
		content = string(raw)
	}

	return blobResult{counts: countLines(content, m)}
}

// countLines applies the three matchers to every line, mirroring the
// matching-line semantics of a recursive grep over a local checkout.
func countLines(content string, m matchers) models.KeywordCounts {
	var c models.KeywordCounts
	for _, line := range strings.Split(content, "\n") {
		if m.admitted.MatchString(line) {
			c.Admitted++
		}
		if m.theorems.MatchString(line) {
			c.Theorems++
		}
		if m.qed.MatchString(line) {
			c.Qed++
		}
	}
	return c
}

func includePath(path string, globs []string) bool {
	if len(globs) == 0 {
		return true
	}
	for _, g := range globs {
		if ok, err := doublestar.Match(g, path); err == nil && ok {
			return true
		}
	}
	return false
}
