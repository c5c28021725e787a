package util

import (
	"path/filepath"
	"strings"
)

const XLSXExt = ".xlsx"

// OutputFileName appends .xlsx unless name already ends with it and places
// bare names under dir.
func OutputFileName(dir, name string) string {
	name = strings.TrimSpace(name)
	if !strings.EqualFold(filepath.Ext(name), XLSXExt) {
		name += XLSXExt
	}
	if dir == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(dir, name)
}
