package util

import "strings"

// missingTokens mirrors the cell values spreadsheet exports use for "no value".
var missingTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func IsMissing(value string) bool {
	_, ok := missingTokens[value]
	return ok
}

// OptionalString returns nil for missing cells and a pointer to the
// unmodified value otherwise.
func OptionalString(value string) *string {
	if IsMissing(value) {
		return nil
	}
	return StringPtr(value)
}

func CleanHeader(input string) string {
	return strings.TrimSpace(strings.TrimPrefix(input, "\ufeff"))
}

func StringPtr(v string) *string { return &v }

func DerefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
