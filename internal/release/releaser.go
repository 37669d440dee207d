package release

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacobblock/git-lfs/internal/artifact"
	"github.com/jacobblock/git-lfs/internal/creds"
	"github.com/jacobblock/git-lfs/internal/github"
	"go.uber.org/zap"
)

type Releaser struct {
	ghClient github.Client
	config   Config
	log      *zap.Logger
}

// NewReleaser resolves the GitHub token (flag first, netrc fallback) and
// returns a releaser. Missing credential entries are a precondition failure,
// no network calls have been made at that point.
func NewReleaser(log *zap.Logger, config Config) (Releaser, error) {
	token := config.Token
	if token == "" {
		t, err := creds.Token(config.NetrcPath, apiHost, uploadHost)
		if err != nil {
			return Releaser{}, PreconditionError{Err: err}
		}
		token = t
	}
	return Releaser{
		ghClient: github.NewClient(log, token),
		config:   config,
		log:      log,
	}, nil
}

func (r Releaser) Release(ctx context.Context) error {
	owner, repo, err := r.config.OwnerRepo()
	if err != nil {
		return err
	}

	// locate artifacts before touching the network
	artifacts, err := artifact.Locate(r.config.ReleasesDir, r.config.Version)
	if err != nil {
		return PreconditionError{Err: fmt.Errorf("locate artifacts: %w", err)}
	}
	r.log.Info(fmt.Sprintf("found %d release artifacts for %s", len(artifacts), r.config.Version))

	scratchDir, cleanup, err := r.scratchDir()
	if err != nil {
		return err
	}
	defer cleanup()

	bodyPath, err := composeBody(r.config.Version, r.config.ChangelogPath, scratchDir, artifacts)
	if err != nil {
		return fmt.Errorf("compose release body: %w", err)
	}
	r.log.Info(fmt.Sprintf("release body composed at %s", bodyPath))

	body, err := os.ReadFile(bodyPath)
	if err != nil {
		return fmt.Errorf("read release body: %w", err)
	}
	release, err := r.ghClient.CreateRelease(ctx, owner, repo, r.config.Version, string(body), r.config.DryRun)
	if err != nil {
		return fmt.Errorf("create %s release: %w", r.config.Version, err)
	}
	if release.ID == 0 {
		// dry run without an existing release, nothing to upload to
		return nil
	}
	r.log.Info(fmt.Sprintf("release %s upload endpoint %s", release.Name, release.UploadURL))

	if err := r.uploadAssets(ctx, owner, repo, release, artifacts); err != nil {
		return fmt.Errorf("upload %s assets: %w", r.config.Version, err)
	}
	return nil
}

// uploadAssets uploads artifacts that are not attached to the release yet,
// one at a time in sorted order.
func (r Releaser) uploadAssets(ctx context.Context, owner, repo string, release github.Release, artifacts []string) error {
	existing, err := r.ghClient.AssetNames(ctx, owner, repo, release.ID)
	if err != nil {
		return err
	}

	pending := pendingArtifacts(artifacts, existing)
	if len(pending) == 0 {
		r.log.Info(fmt.Sprintf("release %s has all %d assets, nothing to upload", release.Name, len(artifacts)))
		return nil
	}

	for _, path := range pending {
		name := filepath.Base(path)
		label := artifact.Label(name)
		contentType, ok := artifact.ContentType(name)
		if !ok {
			r.log.Warn(fmt.Sprintf("no content type for %s, upload falls back to extension detection", name))
		}
		if r.config.DryRun {
			r.log.Info(fmt.Sprintf("upload asset %s skipping, dry run is set to true", name))
			continue
		}
		url, err := r.ghClient.UploadAsset(ctx, owner, repo, release.ID, path, label, contentType)
		if err != nil {
			return fmt.Errorf("upload %s: %w", name, err)
		}
		r.log.Info(fmt.Sprintf("uploaded %s labeled %q to %s", name, label, url))
	}
	return nil
}

// pendingArtifacts returns artifacts whose base name is not in the existing
// asset names. An empty existing list selects everything, filtering against
// an empty set must not suppress the uploads.
func pendingArtifacts(artifacts, existing []string) []string {
	if len(existing) == 0 {
		return artifacts
	}
	uploaded := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		uploaded[name] = struct{}{}
	}

	var pending []string
	for _, path := range artifacts {
		if _, ok := uploaded[filepath.Base(path)]; ok {
			continue
		}
		pending = append(pending, path)
	}
	return pending
}

// scratchDir creates the per run working directory, the returned cleanup
// removes it on every exit path.
func (r Releaser) scratchDir() (string, func(), error) {
	dir, err := os.MkdirTemp("", "git-lfs-release")
	if err != nil {
		return "", nil, fmt.Errorf("create scratch dir: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			r.log.Error(fmt.Sprintf("remove scratch dir %s: %v", dir, err))
			return
		}
		r.log.Info(fmt.Sprintf("removed scratch dir %s", dir))
	}
	return dir, cleanup, nil
}
