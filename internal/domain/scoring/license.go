package scoring

const RuleSPDXLicense = "package_has_spdx_license"

const (
	licenseRecognizedPoints = 3.0
	licenseOSIPoints        = 1.0
)

// scoreSPDXLicense grants points in two tiers: the identifier is on the SPDX
// list, and on top of that the license is OSI approved.
func scoreSPDXLicense(in Input) (float64, error) {
	id, ok := in.Manifest.String("license")
	if !ok || id == "" {
		return 0, nil
	}

	info, ok := in.Licenses.Lookup(id)
	if !ok {
		return 0, nil
	}

	score := licenseRecognizedPoints
	if info.OSIApproved {
		score += licenseOSIPoints
	}
	return score, nil
}
