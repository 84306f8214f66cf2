package version

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	verrors "github.com/dbmrq/vitrina/internal/errors"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", info.Date, "2024-01-01")
	}
	if info.GoVer == "" || info.OS == "" || info.Arch == "" {
		t.Error("runtime fields should be set")
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")
	if s := info.String(); s != "vitrina 1.0.0 (commit: abc123, built: 2024-01-01)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
	if !strings.Contains(info.FullString(), "OS/Arch:") {
		t.Error("FullString() should include the platform")
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.0.1", -1},
		{"1.1.0", "1.0.0", 1},
		{"2.0.0", "1.0.0", 1},
		{"10.0.0", "2.0.0", 1},
		{"1.10.0", "1.2.0", 1},
		{"v1.0.0", "1.0.0", 0},
		{"1.0.0-rc1", "1.0.0", 0},
		{"dev", "0.0.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := CompareVersions(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func releaseServer(t *testing.T, status int, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/"+GitHubRepo+"/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(Release{
			TagName: tag,
			HTMLURL: "https://github.com/" + GitHubRepo + "/releases/" + tag,
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestChecker_GetLatestRelease(t *testing.T) {
	server := releaseServer(t, http.StatusOK, "v1.2.3")
	checker := NewChecker(server.URL)
	defer checker.Close()

	release, err := checker.GetLatestRelease(context.Background())
	if err != nil {
		t.Fatalf("GetLatestRelease() error = %v", err)
	}
	if release.TagName != "v1.2.3" {
		t.Errorf("TagName = %q, want v1.2.3", release.TagName)
	}
}

func TestChecker_CheckForUpdate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		wantNew bool
	}{
		{"older", "1.0.0", true},
		{"same", "v1.2.3", false},
		{"newer", "2.0.0", false},
	}
	server := releaseServer(t, http.StatusOK, "v1.2.3")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(server.URL)
			defer checker.Close()

			release, err := checker.CheckForUpdate(context.Background(), tt.current)
			if err != nil {
				t.Fatalf("CheckForUpdate() error = %v", err)
			}
			if (release != nil) != tt.wantNew {
				t.Errorf("update available = %v, want %v", release != nil, tt.wantNew)
			}
		})
	}
}

func TestChecker_ErrorStatus(t *testing.T) {
	server := releaseServer(t, http.StatusForbidden, "")
	checker := NewChecker(server.URL)
	defer checker.Close()

	_, err := checker.GetLatestRelease(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 403 answer")
	}
	if !errors.Is(err, verrors.ErrNetwork) {
		t.Errorf("error %v should be a network error", err)
	}
}
