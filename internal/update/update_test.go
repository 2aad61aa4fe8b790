package update

import (
	"context"
	"errors"
	"testing"
)

func TestInstallMethodFor(t *testing.T) {
	cases := []struct {
		path string
		want InstallMethod
	}{
		{"/opt/homebrew/Cellar/calc/1.2.0/bin/calc", InstallHomebrew},
		{"/usr/local/Cellar/calc/1.2.0/bin/calc", InstallHomebrew},
		{"/home/linuxbrew/.linuxbrew/bin/calc", InstallHomebrew},
		{"/usr/local/bin/calc", InstallDirect},
		{"/home/me/go/bin/calc", InstallDirect},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if got := installMethodFor(tc.path); got != tc.want {
				t.Errorf("installMethodFor(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestReleaseVersion(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"v1.2.3", "1.2.3", false},
		{"0.4.0", "0.4.0", false},
		{"dev", "", true},
		{"", "", true},
		{"unknown", "", true},
	}

	for _, tc := range cases {
		got, err := releaseVersion(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("releaseVersion(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("releaseVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDevBuildSkipsNetwork(t *testing.T) {
	if _, _, err := CheckForUpdate(context.Background(), "dev"); !errors.Is(err, ErrDevBuild) {
		t.Errorf("CheckForUpdate(dev) error = %v, want ErrDevBuild", err)
	}
	if err := Update(context.Background(), "dev"); !errors.Is(err, ErrDevBuild) {
		t.Errorf("Update(dev) error = %v, want ErrDevBuild", err)
	}
}
