package procurement

import (
	"fmt"
	"strconv"
	"strings"
)

// ProjectCode is the canonical project key, e.g. "PRJ-2024-001".
type ProjectCode string

// ProjectID is a project's numeric id.
type ProjectID int

// ProjectRef identifies a project either by numeric id or by canonical code.
type ProjectRef interface {
	Code() ProjectCode
}

// Code returns the code unchanged.
func (c ProjectCode) Code() ProjectCode { return c }

// Code formats the id as PRJ-2024-NNN.
func (id ProjectID) Code() ProjectCode {
	return ProjectCode(fmt.Sprintf("PRJ-2024-%03d", int(id)))
}

// ParseProjectRef turns a client-supplied value into a reference: all-digit
// strings are numeric ids, anything else is taken as a code.
func ParseProjectRef(value string) ProjectRef {
	value = strings.TrimSpace(value)
	if value != "" && strings.Trim(value, "0123456789") == "" {
		if id, err := strconv.Atoi(value); err == nil {
			return ProjectID(id)
		}
	}
	return ProjectCode(value)
}
