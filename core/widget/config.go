package widget

import (
	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/qrwidget/core/resolve"
)

// DefaultNoValueMessage is shown in the mount when nothing resolves.
const DefaultNoValueMessage = "QR code is not available."

// CornerStyleNone is the sentinel corner style meaning "leave the
// renderer's default", as opposed to a concrete style name.
const CornerStyleNone = "None"

// Config describes one widget instance. It is supplied by the host and
// treated as immutable for the instance's lifetime.
//
// Exactly one value-source mode is active: record-field mode whenever
// RecordID, ObjectType, and ValueField are all set, otherwise the mode
// named by ValueSource (provided value when blank).
type Config struct {
	RecordID   string
	ObjectType string
	ValueField string
	TitleField string

	ValueSource   resolve.Source
	ProvidedValue string
	URLParamName  string

	Width           int
	Height          int
	BackgroundColor string
	DotColor        string
	// DotType is the data-module style, defaulting to "Rounded".
	DotType string
	// CornerSquareType and CornerDotType accept CornerStyleNone to keep
	// the renderer's default.
	CornerSquareType string
	CornerDotType    string

	LogoURL string
	// LogoMargin in module units; zero means the default of 5.
	LogoMargin int
	// LogoSize relative to the symbol; zero means the default of 0.5.
	LogoSize float64

	ShowTitle   bool
	StaticTitle string

	NoValueMessage string
}

// Defaults carries environment-derived fallbacks applied to blank
// Config fields, so hosts can tune fleet-wide appearance without
// touching per-instance configuration.
type Defaults struct {
	Size            int    `env:"QRWIDGET_SIZE" envDefault:"256"`
	BackgroundColor string `env:"QRWIDGET_BACKGROUND_COLOR" envDefault:"#ffffff"`
	DotColor        string `env:"QRWIDGET_DOT_COLOR" envDefault:"#000000"`
	URLParamName    string `env:"QRWIDGET_URL_PARAM" envDefault:"qrv"`
	NoValueMessage  string `env:"QRWIDGET_NO_VALUE_MESSAGE" envDefault:"QR code is not available."`
}

// LoadDefaults reads Defaults from the environment.
func LoadDefaults() (Defaults, error) {
	return env.ParseAs[Defaults]()
}

// WithDefaults returns a copy of the config with blank fields filled
// from the defaults. Set fields are never overridden.
func (c Config) WithDefaults(d Defaults) Config {
	if c.Width == 0 {
		c.Width = d.Size
	}
	if c.Height == 0 {
		c.Height = c.Width
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = d.BackgroundColor
	}
	if c.DotColor == "" {
		c.DotColor = d.DotColor
	}
	if c.URLParamName == "" {
		c.URLParamName = d.URLParamName
	}
	if c.NoValueMessage == "" {
		c.NoValueMessage = d.NoValueMessage
	}
	return c
}

// UsesRecordField reports whether record-field mode is active.
func (c Config) UsesRecordField() bool {
	return c.resolveParams().UsesRecordField()
}

// Mode names the active value-source mode, for logs.
func (c Config) Mode() string {
	switch {
	case c.UsesRecordField():
		return "record-field"
	case c.ValueSource == resolve.SourceURLParam:
		return "url-parameter"
	default:
		return "provided-value"
	}
}

func (c Config) resolveParams() resolve.Params {
	return resolve.Params{
		RecordID:      c.RecordID,
		ObjectType:    c.ObjectType,
		ValueField:    c.ValueField,
		TitleField:    c.TitleField,
		Source:        c.ValueSource,
		ProvidedValue: c.ProvidedValue,
		URLParam:      c.URLParamName,
		ShowTitle:     c.ShowTitle,
		StaticTitle:   c.StaticTitle,
	}
}

func (c Config) noValueMessage() string {
	if c.NoValueMessage != "" {
		return c.NoValueMessage
	}
	return DefaultNoValueMessage
}

// fetchFields lists the qualified fields the record subscription needs:
// the value field plus, when title display uses it, the title field.
func (c Config) fetchFields() []resolve.QualifiedField {
	p := c.resolveParams()
	fields := make([]resolve.QualifiedField, 0, 2)
	if f, ok := p.ValueFieldQualified(); ok {
		fields = append(fields, f)
	}
	if c.ShowTitle {
		if f, ok := p.TitleFieldQualified(); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
