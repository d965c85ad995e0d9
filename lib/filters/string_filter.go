package filters

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// ParseStringFilter compiles a match rule into a predicate. Matching is
// case-insensitive: a bare rule matches as a substring, a rule starting
// with "re:" is a regular expression, and a rule containing "*" is a glob.
// The empty rule matches everything.
func ParseStringFilter(rule string) (func(string) bool, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(string) bool { return true }, nil

	case strings.HasPrefix(rule, "re:"):
		re, err := regexp.Compile("(?i)" + strings.TrimPrefix(rule, "re:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter regexp: %v", rule)
		}

		return re.MatchString, nil

	case strings.Contains(rule, "*"):
		g, err := glob.Compile(strings.ToLower(rule))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter glob: %v", rule)
		}

		return func(s string) bool { return g.Match(strings.ToLower(s)) }, nil

	default:
		needle := strings.ToLower(rule)
		return func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }, nil
	}
}
