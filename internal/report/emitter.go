package report

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/pyconflict/internal/conflict"
)

const header = "# pyconflict report: version 1.0\n"

// Emitter writes batch check reports.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates a new report emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes findings as human-readable text, conflicts first, each
// section sorted by package name.
func (e *Emitter) Emit(findings []conflict.Finding) error {
	conflicts, compatible := partition(findings)

	if _, err := fmt.Fprint(e.w, header); err != nil {
		return err
	}

	if _, err := fmt.Fprint(e.w, "CONFLICTS\n"); err != nil {
		return err
	}
	for _, f := range conflicts {
		if _, err := fmt.Fprintf(e.w, "  %s: %s vs %s\n", f.Package, f.A.Requirement, f.B.Requirement); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(e.w, "COMPATIBLE\n"); err != nil {
		return err
	}
	for _, f := range compatible {
		if _, err := fmt.Fprintf(e.w, "  %s: %s vs %s\n", f.Package, f.A.Requirement, f.B.Requirement); err != nil {
			return err
		}
	}

	return nil
}

type reportDoc struct {
	Conflicts  []entry `yaml:"conflicts"`
	Compatible []entry `yaml:"compatible"`
}

type entry struct {
	Package string `yaml:"package"`
	First   string `yaml:"first"`
	Second  string `yaml:"second"`
}

// EmitYAML writes findings as a YAML document with the same ordering as the
// text format.
func (e *Emitter) EmitYAML(findings []conflict.Finding) error {
	conflicts, compatible := partition(findings)

	doc := reportDoc{
		Conflicts:  toEntries(conflicts),
		Compatible: toEntries(compatible),
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if _, err := e.w.Write(data); err != nil {
		return err
	}
	return nil
}

func partition(findings []conflict.Finding) (conflicts, compatible []conflict.Finding) {
	for _, f := range findings {
		if f.Result == conflict.ResultConflict {
			conflicts = append(conflicts, f)
		} else {
			compatible = append(compatible, f)
		}
	}
	sortFindings(conflicts)
	sortFindings(compatible)
	return conflicts, compatible
}

func sortFindings(fs []conflict.Finding) {
	sort.Slice(fs, func(i, j int) bool {
		return fs[i].Package < fs[j].Package
	})
}

func toEntries(fs []conflict.Finding) []entry {
	entries := make([]entry, 0, len(fs))
	for _, f := range fs {
		entries = append(entries, entry{
			Package: f.Package,
			First:   f.A.Requirement.String(),
			Second:  f.B.Requirement.String(),
		})
	}
	return entries
}
