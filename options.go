package phpjson

import "github.com/viant/tagly/format/text"

//Option conversion option
type Option func(c *converter)

//Options represents conversion options
type Options []Option

//Apply applies options
func (o Options) Apply(c *converter) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		if opt != nil {
			opt(c)
		}
	}
}

//WithCaseFormat formats untagged struct field names, e.g. text.CaseFormatLowerUnderscore
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(c *converter) {
		c.caseFormat = caseFormat
	}
}

//WithTagName overrides the struct tag used for field names, "json" by default
func WithTagName(tagName string) Option {
	return func(c *converter) {
		c.tagName = tagName
	}
}
