package domain

// ManifestLoader reads and parses the manifest found at a package location.
type ManifestLoader interface {
	Load(location string) (*Manifest, error)
}

// LicenseInfo describes a recognized SPDX license identifier.
type LicenseInfo struct {
	ID          string `json:"id"`
	OSIApproved bool   `json:"osi_approved"`
}

// LicenseOracle resolves license identifiers against the SPDX list.
type LicenseOracle interface {
	Lookup(id string) (LicenseInfo, bool)
}

// SemverOracle answers semantic-version validity and range questions.
type SemverOracle interface {
	Valid(version string) bool
	Satisfies(version, constraint string) (bool, error)
}

// ConfigLoader reads the optional per-package configuration.
type ConfigLoader interface {
	Load(packagePath string) (ProjectConfig, error)
}

// GitInfo provides local git metadata for a package directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
