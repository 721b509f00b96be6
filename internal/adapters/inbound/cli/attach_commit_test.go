package cli

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/pkgkraft/internal/domain"
)

type fakeGit struct {
	repo      bool
	hash      string
	err       error
	hashCalls int
}

func (f *fakeGit) IsGitRepo(string) bool { return f.repo }

func (f *fakeGit) CommitHash(string) (string, error) {
	f.hashCalls++
	return f.hash, f.err
}

func TestAttachCommit_SetsHash(t *testing.T) {
	report := domain.NewReport()
	git := &fakeGit{repo: true, hash: "0123456789abcdef0123456789abcdef01234567"}

	attachCommit(report, git, "/pkg", log.New(io.Discard))
	assert.Equal(t, git.hash, report.CommitHash)
}

func TestAttachCommit_SkipsOutsideRepository(t *testing.T) {
	report := domain.NewReport()
	git := &fakeGit{repo: false, hash: "unused"}

	attachCommit(report, git, "/pkg", log.New(io.Discard))
	assert.Empty(t, report.CommitHash)
	assert.Zero(t, git.hashCalls, "commit lookup should be skipped")
}

func TestAttachCommit_IgnoresLookupError(t *testing.T) {
	report := domain.NewReport()
	git := &fakeGit{repo: true, err: errors.New("reference not found")}

	attachCommit(report, git, "/pkg", log.New(io.Discard))
	assert.Empty(t, report.CommitHash)
}
