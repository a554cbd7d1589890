package github

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	ReactNativeOwner = "facebook"
	ReactNativeRepo  = "react-native"

	// VersionLatest asks for the newest stable release.
	VersionLatest = "latest"
)

// ResolveReactNativeVersion turns the requested version into a concrete one.
// Explicit versions are validated and returned without a network call;
// "latest" (or empty) selects the highest stable release by semver.
func ResolveReactNativeVersion(ctx context.Context, client ReleaseClient, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested != "" && requested != VersionLatest {
		v := canonical(requested)
		if !semver.IsValid(v) {
			return "", fmt.Errorf("invalid react-native version %q", requested)
		}
		return strings.TrimPrefix(requested, "v"), nil
	}

	releases, err := client.ListReleases(ctx, ReactNativeOwner, ReactNativeRepo)
	if err != nil {
		return "", fmt.Errorf("failed to resolve latest react-native version: %w", err)
	}

	best := HighestStable(releases)
	if best == "" {
		return "", fmt.Errorf("no stable %s/%s release found", ReactNativeOwner, ReactNativeRepo)
	}
	return strings.TrimPrefix(best, "v"), nil
}

// HighestStable returns the canonical tag of the highest non-draft,
// non-prerelease release, or "" when there is none.
func HighestStable(releases []*Release) string {
	var best string
	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		v := canonical(r.TagName)
		if !semver.IsValid(v) || semver.Prerelease(v) != "" {
			continue
		}
		if best == "" || semver.Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}

func canonical(tag string) string {
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	return tag
}
