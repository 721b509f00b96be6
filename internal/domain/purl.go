package domain

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// PackageURL returns the pkg:npm identifier for a manifest, or "" when the
// manifest has no name.
func PackageURL(m *Manifest) string {
	name := strings.TrimSpace(m.Name())
	if name == "" {
		return ""
	}

	var namespace string
	if strings.HasPrefix(name, "@") {
		if i := strings.Index(name, "/"); i > 0 {
			namespace, name = name[:i], name[i+1:]
		}
	}

	return packageurl.NewPackageURL(packageurl.TypeNPM, namespace, name, m.Version(), nil, "").ToString()
}
