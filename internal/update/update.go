// Package update checks for and installs newer calc releases from GitHub.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

// Repository is the GitHub slug releases are published under.
const Repository = "pengelbrecht/calc"

// ErrDevBuild is returned when the running binary has no release version.
var ErrDevBuild = errors.New("development build has no release version")

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	InstallDirect InstallMethod = iota
	InstallHomebrew
)

// Release describes an available release.
type Release struct {
	Version string
	URL     string
	Notes   string
}

// DetectInstallMethod inspects the executable path.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallDirect
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return installMethodFor(exe)
}

func installMethodFor(exe string) InstallMethod {
	p := filepath.ToSlash(exe)
	if strings.Contains(p, "/Cellar/") || strings.Contains(p, "/homebrew/") || strings.Contains(p, "/linuxbrew/") {
		return InstallHomebrew
	}
	return InstallDirect
}

// CheckForUpdate reports the latest release and whether it is newer than current.
func CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	current, err := releaseVersion(current)
	if err != nil {
		return nil, false, err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	release := &Release{
		Version: latest.Version(),
		URL:     latest.URL,
		Notes:   latest.ReleaseNotes,
	}
	return release, !latest.LessOrEqual(current), nil
}

// Update replaces the running executable with the latest release.
func Update(ctx context.Context, current string) error {
	current, err := releaseVersion(current)
	if err != nil {
		return err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return fmt.Errorf("detect latest release: %w", err)
	}
	if !found || latest.LessOrEqual(current) {
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("install %s: %w", latest.Version(), err)
	}
	return nil
}

// releaseVersion strips a leading "v" and rejects builds without a version.
func releaseVersion(v string) (string, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" || v == "dev" || v[0] < '0' || v[0] > '9' {
		return "", ErrDevBuild
	}
	return v, nil
}
