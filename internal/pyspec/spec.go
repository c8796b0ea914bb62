package pyspec

import (
	"fmt"
	"regexp"
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// Specifier is a parsed package specifier: a name plus a version
// requirement. A specifier with no trailing constraint matches any version.
type Specifier struct {
	Name        string
	Requirement *semver.Constraints
}

// InvalidFormatError reports a specifier with no leading package identifier.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid package format: %q", e.Input)
}

// InvalidRequirementError reports a version constraint the requirement
// grammar rejected after operator translation.
type InvalidRequirementError struct {
	Input string
	Err   error
}

func (e *InvalidRequirementError) Error() string {
	return fmt.Sprintf("invalid version requirement: %q", e.Input)
}

func (e *InvalidRequirementError) Unwrap() error {
	return e.Err
}

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+`)

// pythonOps rewrites Python (PEP 440) operators into semver constraint
// syntax. >= and <= already match. != becomes !, which the constraint
// grammar may reject; that is left to the parser rather than reinterpreted.
var pythonOps = strings.NewReplacer(
	"==", "=",
	"~=", "~",
	"!=", "!",
)

// matchAny accepts every version.
var matchAny = mustConstraint("*")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse splits a raw specifier such as "requests>=2.0.0" into a name and a
// version requirement. A bare name parses as unconstrained.
func Parse(raw string) (*Specifier, error) {
	name := nameRe.FindString(raw)
	if name == "" {
		return nil, &InvalidFormatError{Input: raw}
	}

	versionStr := raw[len(name):]
	if versionStr == "" {
		return &Specifier{Name: name, Requirement: matchAny}, nil
	}

	req, err := semver.NewConstraint(pythonOps.Replace(versionStr))
	if err != nil {
		return nil, &InvalidRequirementError{Input: versionStr, Err: err}
	}

	return &Specifier{Name: name, Requirement: req}, nil
}

func (s *Specifier) String() string {
	return fmt.Sprintf("%s %s", s.Name, s.Requirement)
}
