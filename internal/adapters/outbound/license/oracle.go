package license

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/github/go-spdx/v2/spdxexp/spdxlicenses"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/pkgkraft/internal/domain"
)

//go:embed osi.yaml
var osiData []byte

type osiTable struct {
	Approved []string `yaml:"osi_approved"`
}

// Oracle implements domain.LicenseOracle on top of the SPDX license list.
type Oracle struct {
	known map[string]string // lower-cased id -> canonical id, active and deprecated
	osi   map[string]string // lower-cased id -> canonical id
}

// New builds an Oracle from the embedded OSI table.
func New() *Oracle {
	o, err := parse(osiData)
	if err != nil {
		panic(fmt.Sprintf("license: embedded osi.yaml: %v", err))
	}
	return o
}

func parse(data []byte) (*Oracle, error) {
	var table osiTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	o := &Oracle{
		known: make(map[string]string),
		osi:   make(map[string]string, len(table.Approved)),
	}
	for _, list := range [][]string{spdxlicenses.GetLicenses(), spdxlicenses.GetDeprecated()} {
		for _, id := range list {
			o.known[strings.ToLower(id)] = id
		}
	}
	for _, id := range table.Approved {
		o.osi[strings.ToLower(id)] = id
	}
	return o, nil
}

// Lookup resolves a single SPDX identifier, matched case-insensitively
// against the active and deprecated license lists. Expressions such as
// "MIT OR Apache-2.0" or "MIT+" and LicenseRef- references are not
// identifiers and are reported as unknown. Deprecated ids that carry a "+"
// themselves, like "GPL-2.0+", are on the list and resolve.
func (o *Oracle) Lookup(id string) (domain.LicenseInfo, bool) {
	canonical, ok := o.known[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return domain.LicenseInfo{}, false
	}

	info := domain.LicenseInfo{ID: canonical}
	if _, ok := o.osi[strings.ToLower(canonical)]; ok {
		info.OSIApproved = true
	}
	return info, true
}

// OSIApproved lists the identifiers the oracle treats as OSI approved.
func (o *Oracle) OSIApproved() []string {
	ids := make([]string, 0, len(o.osi))
	for _, id := range o.osi {
		ids = append(ids, id)
	}
	return ids
}
