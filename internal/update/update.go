// Package update checks GitHub releases for newer my-package builds and
// replaces the running executable.
package update

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

// Repository is the GitHub repository releases are published to.
const Repository = "pengelbrecht/mypackage"

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	InstallBinary InstallMethod = iota
	InstallHomebrew
	InstallGo
)

// String returns the string representation of the install method.
func (m InstallMethod) String() string {
	switch m {
	case InstallBinary:
		return "binary"
	case InstallHomebrew:
		return "homebrew"
	case InstallGo:
		return "go install"
	default:
		return "unknown"
	}
}

// ErrDevelopmentBuild is returned when asked to update a build without a release version.
var ErrDevelopmentBuild = errors.New("development builds cannot be updated")

// Release is a published release.
type Release struct {
	Version string
	URL     string
}

// DetectInstallMethod inspects the running executable's path.
func DetectInstallMethod() InstallMethod {
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return InstallBinary
	}
	return installMethodForPath(exe)
}

func installMethodForPath(exe string) InstallMethod {
	p := filepath.ToSlash(exe)
	switch {
	case strings.Contains(p, "/Cellar/") || strings.Contains(p, "/homebrew/") || strings.Contains(p, "/linuxbrew/"):
		return InstallHomebrew
	case strings.Contains(p, "/go/bin/"):
		return InstallGo
	default:
		return InstallBinary
	}
}

func isDevelopmentVersion(version string) bool {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	return v == "" || v == "dev" || v == "0.0.0" || strings.HasSuffix(v, "-dev")
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create release source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// CheckForUpdate returns the latest release and whether it is newer than current.
func CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	if isDevelopmentVersion(current) {
		return nil, false, ErrDevelopmentBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, false, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	release := &Release{Version: latest.Version(), URL: latest.URL}
	if latest.LessOrEqual(current) {
		return release, false, nil
	}
	return release, true, nil
}

// Update replaces the running executable with the latest release.
func Update(ctx context.Context, current string) (*Release, error) {
	if isDevelopmentVersion(current) {
		return nil, ErrDevelopmentBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found || latest.LessOrEqual(current) {
		return nil, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return nil, fmt.Errorf("update executable: %w", err)
	}
	return &Release{Version: latest.Version(), URL: latest.URL}, nil
}
