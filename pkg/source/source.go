package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// TemplateDir is the template root inside a giter8 repository.
const TemplateDir = "src/main/g8"

// Config controls remote template fetching.
type Config struct {
	// Branch to check out. Empty uses the remote HEAD.
	Branch string

	// Depth of the clone. Zero fetches the full history.
	Depth int

	// Timeout bounds the clone. Zero means no timeout beyond ctx.
	Timeout time.Duration

	// Token authenticates HTTPS clones of private repositories.
	Token string
}

// Checkout is a fetched template.
type Checkout struct {
	// URL is the cloned repository.
	URL string

	// Dir is the temporary clone.
	Dir string

	// Root is the template directory within Dir.
	Root string

	// Commit is the checked-out commit hash.
	Commit string
}

// Remove deletes the temporary clone.
func (c *Checkout) Remove() error {
	return os.RemoveAll(c.Dir)
}

// IsRemote reports whether ref names a git repository rather than a local
// directory.
func IsRemote(ref string) bool {
	for _, prefix := range []string{"https://", "http://", "ssh://", "git://", "file://", "git@", "gh:"} {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}

// URL expands the gh: shorthand; other references are returned unchanged.
func URL(ref string) string {
	if repo, ok := strings.CutPrefix(ref, "gh:"); ok {
		return "https://github.com/" + strings.TrimSuffix(repo, ".git") + ".git"
	}
	return ref
}

// Fetcher clones template repositories.
type Fetcher struct {
	config Config
	logger *slog.Logger
}

// NewFetcher creates a Fetcher. A nil logger uses slog.Default().
func NewFetcher(cfg Config, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{config: cfg, logger: logger.With("component", "source")}
}

// Fetch clones ref into a new temporary directory. The caller removes it
// with Checkout.Remove.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (*Checkout, error) {
	url := URL(ref)
	dir, err := os.MkdirTemp("", "g8-template-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create clone directory: %w", err)
	}

	checkout, err := f.clone(ctx, url, dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return checkout, nil
}

func (f *Fetcher) clone(ctx context.Context, url, dir string) (*Checkout, error) {
	opts := &gogit.CloneOptions{
		URL:   url,
		Depth: f.config.Depth,
		Tags:  gogit.NoTags,
	}
	if f.config.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(f.config.Branch)
		opts.SingleBranch = true
	}
	if f.config.Token != "" {
		opts.Auth = tokenAuth(f.config.Token)
	}

	if f.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	repo, err := gogit.PlainCloneContext(ctx, dir, false, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", url, err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD of %s: %w", url, err)
	}

	if err := os.RemoveAll(filepath.Join(dir, gogit.GitDirName)); err != nil {
		return nil, fmt.Errorf("failed to remove git metadata: %w", err)
	}

	root, err := templateRoot(dir)
	if err != nil {
		return nil, err
	}

	checkout := &Checkout{URL: url, Dir: dir, Root: root, Commit: head.Hash().String()}
	f.logger.Info("template fetched",
		"url", url,
		"commit", checkout.Commit,
		"root", root,
		"duration", time.Since(start),
	)
	return checkout, nil
}

// templateRoot returns dir/src/main/g8 when it is a directory, else dir.
func templateRoot(dir string) (string, error) {
	candidate := filepath.Join(dir, filepath.FromSlash(TemplateDir))
	info, err := os.Stat(candidate)
	switch {
	case err == nil && info.IsDir():
		return candidate, nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return dir, nil
	default:
		return "", fmt.Errorf("failed to inspect %s: %w", candidate, err)
	}
}

func tokenAuth(token string) transport.AuthMethod {
	return &http.BasicAuth{Username: "git", Password: token}
}
