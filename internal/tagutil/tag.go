package tagutil

import "strings"

// Tag is a parsed encoding/json style struct tag.
type Tag struct {
	Name      string
	OmitEmpty bool
	Explicit  bool
	Skip      bool
}

// Parse parses raw (e.g. `name,omitempty`), falling back to defaultName when no name is given.
func Parse(defaultName string, raw string) Tag {
	if raw == "" {
		return Tag{Name: defaultName}
	}
	if raw == "-" {
		return Tag{Skip: true}
	}
	name, options, _ := strings.Cut(raw, ",")
	tag := Tag{Name: name, Explicit: name != ""}
	if name == "" {
		tag.Name = defaultName
	}
	for options != "" {
		var option string
		option, options, _ = strings.Cut(options, ",")
		if option == "omitempty" {
			tag.OmitEmpty = true
		}
	}
	return tag
}
