package engines

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
)

var varPattern = regexp.MustCompile(`{{\s*([^ ]+)\s*}}`)

// VarsEngine substitutes '{{ var }}' occurrences with values from the
// data map, leaving any other text untouched. Unlike GoTextEngine it
// tolerates arbitrary text around the variable expressions, which makes
// it suitable for rendering plain file and directory names.
type VarsEngine struct{}

// RenderText replaces '{{ var }}' in the in string by values from the data map.
func (VarsEngine) RenderText(in string, data map[string]string) (string, error) {
	missingVars := make(map[string]bool, 0)
	rendered := varPattern.ReplaceAllStringFunc(in, func(varNameStr string) string {
		if subMatches := varPattern.FindStringSubmatch(varNameStr); subMatches != nil {
			if val, found := data[subMatches[1]]; !found {
				missingVars[subMatches[1]] = true
			} else {
				return val
			}
		}
		return varNameStr
	})

	if len(missingVars) > 0 {
		return rendered, fmt.Errorf("missing vars: %s\nin template string: %q",
			strings.Join(maps.Keys(missingVars), ","), in)
	}

	return rendered, nil
}
