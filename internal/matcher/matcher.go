// Package matcher filters text lines by a plain substring query, case-sensitively or not
package matcher

import "strings"

// Search returns every line of contents containing query, in original order.
// Returned lines are substrings of contents, nothing is copied.
func Search(query, contents string) []string {
	result := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive is Search with both query and lines lower-cased before comparison.
// The original, non-folded lines are returned.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	result := []string{}
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// Lines splits contents by "\n" or "\r\n".
// A trailing line break does not produce an empty last line.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		if i < 0 { // последняя строка без переноса
			lines = append(lines, contents)
			break
		}
		lines = append(lines, strings.TrimSuffix(contents[:i], "\r"))
		contents = contents[i+1:]
	}
	return lines
}
