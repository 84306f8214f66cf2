// Package version provides build information and release checks for vitrina.
package version

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"resty.dev/v3"

	verrors "github.com/dbmrq/vitrina/internal/errors"
)

// GitHubRepo is the GitHub repository for vitrina.
const GitHubRepo = "dbmrq/vitrina"

// DefaultAPIURL is the GitHub API root.
const DefaultAPIURL = "https://api.github.com"

// Info contains version information about vitrina.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("vitrina %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`vitrina %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// Release represents a GitHub release.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// Checker checks for new versions.
type Checker struct {
	client *resty.Client
	Repo   string
}

// NewChecker creates a version checker against the GitHub API. An empty
// apiURL selects DefaultAPIURL.
func NewChecker(apiURL string) *Checker {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(apiURL, "/")).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetHeader("User-Agent", "vitrina-version-checker")

	return &Checker{client: client, Repo: GitHubRepo}
}

// Close releases the HTTP client.
func (c *Checker) Close() error {
	return c.client.Close()
}

// GetLatestRelease fetches the latest release from GitHub.
func (c *Checker) GetLatestRelease(ctx context.Context) (*Release, error) {
	var release Release
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("repo", c.Repo).
		SetResult(&release).
		Get("/repos/{repo}/releases/latest")
	if err != nil {
		return nil, verrors.NetworkUnavailable("api.github.com", err)
	}
	if resp.IsError() {
		return nil, verrors.New(verrors.ErrNetwork, fmt.Sprintf("GitHub API returned %d", resp.StatusCode())).
			WithDetails("status", fmt.Sprintf("%d", resp.StatusCode()))
	}
	return &release, nil
}

// CheckForUpdate compares current version with latest release.
// Returns the release if an update is available, nil if current.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) (*Release, error) {
	release, err := c.GetLatestRelease(ctx)
	if err != nil {
		return nil, err
	}

	if CompareVersions(release.TagName, currentVersion) > 0 {
		return release, nil
	}
	return nil, nil
}

// CompareVersions compares two semantic version strings.
// Returns: 1 if a > b, -1 if a < b, 0 if equal.
func CompareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := 0; i < 3; i++ {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseVersion parses a version string into major, minor, patch integers.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	parts := strings.Split(v, ".")
	var result [3]int
	for i := 0; i < 3 && i < len(parts); i++ {
		// Drop any pre-release suffix such as "-rc1".
		part := strings.Split(parts[i], "-")[0]
		fmt.Sscanf(part, "%d", &result[i])
	}
	return result
}
