package templates

import (
	"fmt"
	"regexp"
)

// PatternList is an ordered set of compiled regular expressions
// matched against file paths.
type PatternList []*regexp.Regexp

// CompilePatterns compiles pattern groups into a single PatternList,
// preserving group order. Matching is anchored at the beginning of the
// path and may cover only its prefix, so patterns that must reach the
// end of the path have to end with '$'.
func CompilePatterns(groups ...[]string) (PatternList, error) {
	var list PatternList
	for _, group := range groups {
		for _, pattern := range group {
			re, err := regexp.Compile("^(?:" + pattern + ")")
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %s", pattern, err)
			}
			list = append(list, re)
		}
	}

	return list, nil
}

// Match reports whether path matches any pattern in the list.
func (list PatternList) Match(path string) bool {
	for _, re := range list {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
