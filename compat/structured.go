package compat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lixenwraith/funnel"
)

// keyValuePattern detects "key=%v" and "key: %v" verbs in printf-style formats
var keyValuePattern = regexp.MustCompile(`(\w+)\s*[:=]\s*%[vsdqxXeEfFgGtpbcU]`)

// parseFormat extracts structured fields from a printf-style format.
// Text outside key/verb pairs becomes the message. When the format carries
// no pairs, or verbs and args don't line up, the whole formatted string is
// the message and fields is nil.
func parseFormat(format string, args []any) (string, funnel.Fields) {
	var matches [][]int
	for _, match := range keyValuePattern.FindAllStringSubmatchIndex(format, -1) {
		// A key glued to '%' belongs to an escape or a verb, not a pair
		if match[2] > 0 && format[match[2]-1] == '%' {
			continue
		}
		matches = append(matches, match)
	}
	if len(matches) == 0 || strings.Count(format, "%")-strings.Count(format, "%%")*2 != len(args) {
		return fmt.Sprintf(format, args...), nil
	}

	fields := make(funnel.Fields, len(matches))
	var message []string
	lastEnd := 0
	argIndex := 0

	for _, match := range matches {
		// Text and args before this pair belong to the message
		if match[0] > lastEnd {
			segment := format[lastEnd:match[0]]
			verbs := strings.Count(segment, "%") - strings.Count(segment, "%%")*2
			text := fmt.Sprintf(segment, args[argIndex:argIndex+verbs]...)
			argIndex += verbs
			if text = strings.TrimSpace(text); text != "" {
				message = append(message, text)
			}
		}

		key := format[match[2]:match[3]]
		fields[key] = args[argIndex]
		argIndex++
		lastEnd = match[1]
	}

	// Handle remaining format string and args
	if lastEnd < len(format) {
		text := fmt.Sprintf(format[lastEnd:], args[argIndex:]...)
		if text = strings.TrimSpace(text); text != "" {
			message = append(message, text)
		}
	}

	return strings.Join(message, " "), fields
}

// withSource merges the source tag into fields without modifying them
func withSource(fields funnel.Fields, source string) funnel.Fields {
	tagged := make(funnel.Fields, len(fields)+1)
	for k, v := range fields {
		tagged[k] = v
	}
	tagged["source"] = source
	return tagged
}
