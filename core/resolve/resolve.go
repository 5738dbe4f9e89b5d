package resolve

import "strings"

// Defaults applied when the corresponding Params fields are blank.
const (
	// DefaultURLParam is the query parameter consulted in URL-parameter
	// mode when no parameter name is configured.
	DefaultURLParam = "qrv"

	// DefaultTitle is the fallback title when title display is enabled
	// but neither a record title field nor a static title yields text.
	DefaultTitle = "QR Code"
)

// Source selects where the QR value comes from when record-field mode is
// not active.
type Source string

const (
	// SourceProvided resolves the value from Params.ProvidedValue.
	SourceProvided Source = "provided"

	// SourceURLParam resolves the value from the current navigation
	// query state.
	SourceURLParam Source = "url-param"
)

// FieldSource is the read side of a record snapshot: a lookup from
// qualified field identifier to scalar value. A nil FieldSource means no
// snapshot has been delivered yet.
type FieldSource interface {
	// Field returns the value at the qualified field and whether the
	// field is present and non-empty.
	Field(QualifiedField) (string, bool)
}

// Params holds the value-source configuration of a single widget
// instance. Exactly one mode is active at a time; see UsesRecordField.
type Params struct {
	RecordID   string
	ObjectType string
	ValueField string
	TitleField string

	Source        Source
	ProvidedValue string
	URLParam      string

	ShowTitle   bool
	StaticTitle string
}

// UsesRecordField reports whether record-field mode is active. It takes
// precedence over Source: the record id, object type, and value field
// must all be present for the record to drive the value.
func (p Params) UsesRecordField() bool {
	_, ok := Qualify(p.ObjectType, p.ValueField)
	return ok && p.RecordID != ""
}

// ValueFieldQualified returns the qualified value field, valid only in
// record-field mode.
func (p Params) ValueFieldQualified() (QualifiedField, bool) {
	if p.RecordID == "" {
		return "", false
	}
	return Qualify(p.ObjectType, p.ValueField)
}

// TitleFieldQualified returns the qualified title field, if configured.
func (p Params) TitleFieldQualified() (QualifiedField, bool) {
	return Qualify(p.ObjectType, p.TitleField)
}

// URLParamName returns the query parameter name consulted in
// URL-parameter mode, trimmed, defaulting to DefaultURLParam.
func (p Params) URLParamName() string {
	if name := strings.TrimSpace(p.URLParam); name != "" {
		return name
	}
	return DefaultURLParam
}

// Value resolves the effective QR value. The record snapshot is consulted
// only in record-field mode and the query state only in URL-parameter
// mode; inputs for non-selected modes are ignored. A blank result at any
// stage reports false, which is a normal "no value" state, not an error.
func Value(p Params, rec FieldSource, query map[string]string) (string, bool) {
	if p.UsesRecordField() {
		field, ok := p.ValueFieldQualified()
		if !ok || rec == nil {
			return "", false
		}
		return rec.Field(field)
	}

	if p.Source == SourceURLParam {
		v, ok := query[p.URLParamName()]
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}

	if v := p.ProvidedValue; v != "" {
		return v, true
	}
	return "", false
}

// Title resolves the effective title text. Reports false when title
// display is disabled. In record-field mode a non-empty record title
// field wins; otherwise the static title applies, falling back to
// DefaultTitle.
func Title(p Params, rec FieldSource) (string, bool) {
	if !p.ShowTitle {
		return "", false
	}

	if p.UsesRecordField() && rec != nil {
		if field, ok := p.TitleFieldQualified(); ok {
			if v, ok := rec.Field(field); ok {
				return v, true
			}
		}
	}

	if p.StaticTitle != "" {
		return p.StaticTitle, true
	}
	return DefaultTitle, true
}
