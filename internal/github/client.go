package github

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/go-github/v36/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const httpTimeout = 30 * time.Second

type Client struct {
	gh  *github.Client
	log *zap.Logger
}

// NewClient returns "logged in" GitHub client if the token is not empty.
func NewClient(log *zap.Logger, token string) Client {
	if token == "" {
		return Client{log: log, gh: github.NewClient(&http.Client{Timeout: httpTimeout})}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = httpTimeout
	return Client{log: log, gh: github.NewClient(tc)}
}

// FindRelease lists all releases of the repository and returns the one whose
// name equals version exactly. Substring matches are deliberately not
// considered, v1.2 must not resolve to v1.2.3.
func (c Client) FindRelease(ctx context.Context, owner, repo, version string) (Release, bool, error) {
	opts := &github.ListOptions{PerPage: 100}
	for {
		releases, response, err := c.gh.Repositories.ListReleases(ctx, owner, repo, opts)
		if err != nil {
			return Release{}, false, fmt.Errorf("list releases: %w", err)
		}
		for _, release := range releases {
			if release == nil {
				continue
			}
			if release.GetName() == version {
				return toRelease(release), true, nil
			}
		}
		if response.NextPage == 0 {
			return Release{}, false, nil
		}
		opts.Page = response.NextPage
	}
}

// CreateRelease creates a draft release (if it doesn't exist) and returns it.
// An existing release is returned as is, its body is never refreshed.
func (c Client) CreateRelease(ctx context.Context, owner, repo, version, body string, dryRun bool) (Release, error) {
	existing, found, err := c.FindRelease(ctx, owner, repo, version)
	if err != nil {
		return Release{}, fmt.Errorf("find %s release: %w", version, err)
	}
	if found {
		c.log.Info(fmt.Sprintf("release %s already exists, skipping create release", version))
		return existing, nil
	}
	if dryRun {
		c.log.Info(fmt.Sprintf("create release %s skipping, dry run is set to true", version))
		return Release{}, nil
	}

	request := &github.RepositoryRelease{
		TagName: github.String(version),
		Name:    github.String(version),
		Draft:   github.Bool(true),
		Body:    github.String(body),
	}

	response, _, err := c.gh.Repositories.CreateRelease(ctx, owner, repo, request)
	if err != nil {
		return Release{}, fmt.Errorf("create release %s: %w", version, err)
	}
	c.log.Info(fmt.Sprintf("draft release %s with id %d created", version, response.GetID()))
	return toRelease(response), nil
}

// AssetNames returns the base names of assets already attached to the release.
func (c Client) AssetNames(ctx context.Context, owner, repo string, releaseId int64) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}
	for {
		assets, response, err := c.gh.Repositories.ListReleaseAssets(ctx, owner, repo, releaseId, opts)
		if err != nil {
			return nil, fmt.Errorf("list release %d assets: %w", releaseId, err)
		}
		for _, asset := range assets {
			if asset == nil {
				continue
			}
			names = append(names, asset.GetName())
		}
		if response.NextPage == 0 {
			return names, nil
		}
		opts.Page = response.NextPage
	}
}

// UploadAsset uploads the file as a release asset with the given label and
// content type and returns the asset download url. Name and label are
// percent-encoded by the underlying client; an empty content type leaves the
// detection to the file extension.
func (c Client) UploadAsset(ctx context.Context, owner, repo string, releaseId int64, path, label, contentType string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	opts := &github.UploadOptions{
		Name:      filepath.Base(path),
		Label:     label,
		MediaType: contentType,
	}
	asset, _, err := c.gh.Repositories.UploadReleaseAsset(ctx, owner, repo, releaseId, opts, f)
	if err != nil {
		return "", fmt.Errorf("upload release asset %s: %w", opts.Name, err)
	}
	return asset.GetBrowserDownloadURL(), nil
}

func toRelease(release *github.RepositoryRelease) Release {
	return Release{
		ID:        release.GetID(),
		Name:      release.GetName(),
		UploadURL: stripURLTemplate(release.GetUploadURL()),
	}
}
