package resolve

import "strings"

// QualifiedField is a fully-qualified field identifier in the form
// "ObjectType.FieldName". Record snapshots are keyed by it.
type QualifiedField string

// String returns the identifier as a plain string.
func (f QualifiedField) String() string {
	return string(f)
}

// Qualify builds a qualified field identifier from an object type and a
// bare field name. The field name is trimmed of surrounding whitespace.
// Returns false when either part is missing, leaving nothing to qualify.
func Qualify(objectType, fieldName string) (QualifiedField, bool) {
	fieldName = strings.TrimSpace(fieldName)
	if objectType == "" || fieldName == "" {
		return "", false
	}
	return QualifiedField(objectType + "." + fieldName), true
}
