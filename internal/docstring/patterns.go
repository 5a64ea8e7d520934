package docstring

import (
	"regexp"
	"strings"
)

var (
	// :param name: text, :type name: text, :returns: text, ...
	nativeFieldPattern = regexp.MustCompile(`^\s*:(?:param|parameter|arg|argument|key|keyword|type|returns?|rtype|raises?|except|exception|var|ivar|cvar|vartype|meta)(?:\s+[^:]+)?:.*$`)

	// x: text, x, y: text, **kwargs: text
	// The colon must follow the last name directly.
	paramPattern = regexp.MustCompile(`^\s*(\*{0,2}\w+(?:,\s*\*{0,2}\w+)*):.*$`)
)

// Section headers that look like declarations
var reservedNames = map[string]bool{
	"example":  true,
	"examples": true,
	"return":   true,
	"returns":  true,
}

// IsNativeField reports whether the whole line is a reStructuredText field
func IsNativeField(line string) bool {
	return nativeFieldPattern.MatchString(line)
}

// IsParamDeclaration reports whether the whole line declares one or more
// parameters followed by a colon
func IsParamDeclaration(line string) bool {
	m := paramPattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	return !reservedNames[strings.ToLower(m[1])]
}
