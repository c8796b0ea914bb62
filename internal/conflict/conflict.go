package conflict

import (
	semver "github.com/Masterminds/semver/v3"

	"github.com/frederic-klein/pyconflict/internal/pyspec"
)

// Result classifies the outcome of checking two specifiers against each other.
type Result string

const (
	ResultDifferentPackages Result = "different-packages"
	ResultNoConflict        Result = "no-conflict"
	ResultConflict          Result = "conflict"
)

// probeVersions is the fixed sample of candidate versions tested against
// both requirements. Satisfiability is approximated: if no probe satisfies
// both sides, the pair is reported as conflicting, even though a true
// intersection could exist between the probes.
var probeVersions = mustVersions(
	"0.1.0", "1.0.0", "2.0.0", "3.0.0", "4.0.0", "5.0.0", "6.0.0", "7.0.0",
	"1.2.3", "2.3.4", "3.4.5", "4.5.6", "5.6.7",
	"1.0.1", "2.0.1", "3.0.1", "4.0.1", "5.0.1",
)

func mustVersions(raw ...string) []*semver.Version {
	vs := make([]*semver.Version, len(raw))
	for i, s := range raw {
		vs[i] = semver.MustParse(s)
	}
	return vs
}

// Check compares two specifiers and classifies the pair. Specifiers naming
// different packages never conflict and skip probing entirely.
func Check(a, b *pyspec.Specifier) Result {
	if a.Name != b.Name {
		return ResultDifferentPackages
	}
	if Conflicts(a, b) {
		return ResultConflict
	}
	return ResultNoConflict
}

// Conflicts reports whether no probe version satisfies both requirements.
// Callers must ensure both specifiers name the same package.
func Conflicts(a, b *pyspec.Specifier) bool {
	for _, v := range probeVersions {
		if a.Requirement.Check(v) && b.Requirement.Check(v) {
			// Witness found: some version satisfies both sides.
			return false
		}
	}
	return true
}

// Finding records the outcome for one same-package pair from a batch check.
type Finding struct {
	Package string
	A       *pyspec.Specifier
	B       *pyspec.Specifier
	Result  Result
}

// CheckAll checks every pair of specifiers that name the same package.
// Pairs naming different packages produce no finding.
func CheckAll(specs []*pyspec.Specifier) []Finding {
	var findings []Finding
	for i := 0; i < len(specs); i++ {
		for j := i + 1; j < len(specs); j++ {
			if specs[i].Name != specs[j].Name {
				continue
			}
			findings = append(findings, Finding{
				Package: specs[i].Name,
				A:       specs[i],
				B:       specs[j],
				Result:  Check(specs[i], specs[j]),
			})
		}
	}
	return findings
}
