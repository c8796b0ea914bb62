package conflict

import (
	"testing"

	"github.com/frederic-klein/pyconflict/internal/pyspec"
)

func mustSpec(t *testing.T, raw string) *pyspec.Specifier {
	t.Helper()
	spec, err := pyspec.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", raw, err)
	}
	return spec
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want Result
	}{
		{"different packages", "requests>=2.0.0", "flask>=2.0.0", ResultDifferentPackages},
		{"overlapping ranges", "requests>=2.0.0", "requests<3.0.0", ResultNoConflict},
		{"disjoint ranges", "django>=4.0.0", "django<3.0.0", ResultConflict},
		{"wide overlap", "django>=2.0.0", "django<5.0.0", ResultNoConflict},
		{"disjoint high low", "django>=5.0.0", "django<4.0.0", ResultConflict},
		{"same exact version", "pytest==6.0.0", "pytest==6.0.0", ResultNoConflict},
		{"different exact versions", "pytest==7.0.0", "pytest==6.0.0", ResultConflict},
		{"exact on range boundary", "django==3.0.0", "django>=3.0.0", ResultNoConflict},
		{"unconstrained vs range", "requests", "requests>=2.0.0", ResultNoConflict},
		{"unconstrained both", "requests", "requests", ResultNoConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustSpec(t, tt.a)
			b := mustSpec(t, tt.b)
			if got := Check(a, b); got != tt.want {
				t.Errorf("Check(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCheck_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"requests>=2.0.0", "requests<3.0.0"},
		{"django>=4.0.0", "django<3.0.0"},
		{"pytest==7.0.0", "pytest==6.0.0"},
		{"requests>=2.0.0", "flask>=2.0.0"},
	}

	for _, p := range pairs {
		a := mustSpec(t, p[0])
		b := mustSpec(t, p[1])
		if Check(a, b) != Check(b, a) {
			t.Errorf("Check(%s, %s) not symmetric", p[0], p[1])
		}
	}
}

func TestConflicts_ExactOutsideProbeSet(t *testing.T) {
	// Both requirements are satisfied only by 2.5.0, which is not a probe
	// version, so the heuristic reports a conflict even though the
	// requirements truly intersect.
	a := mustSpec(t, "requests==2.5.0")
	b := mustSpec(t, "requests==2.5.0")
	if !Conflicts(a, b) {
		t.Errorf("Conflicts() = false, want true for versions outside the probe set")
	}
}

func TestCheckAll(t *testing.T) {
	specs := []*pyspec.Specifier{
		mustSpec(t, "requests>=2.0.0"),
		mustSpec(t, "requests<3.0.0"),
		mustSpec(t, "django>=4.0.0"),
		mustSpec(t, "django<3.0.0"),
		mustSpec(t, "flask"),
	}

	findings := CheckAll(specs)
	if len(findings) != 2 {
		t.Fatalf("CheckAll() returned %d findings, want 2", len(findings))
	}

	want := map[string]Result{
		"requests": ResultNoConflict,
		"django":   ResultConflict,
	}
	for _, f := range findings {
		if f.Result != want[f.Package] {
			t.Errorf("CheckAll() %s = %s, want %s", f.Package, f.Result, want[f.Package])
		}
	}
}

func TestCheckAll_Empty(t *testing.T) {
	if findings := CheckAll(nil); len(findings) != 0 {
		t.Errorf("CheckAll(nil) returned %d findings, want 0", len(findings))
	}
}
