package platform

import "strings"

// unknownValue is rendered for attributes the host did not report.
const unknownValue = "Неизвестно"

// Field is one named battery attribute. A Field without a Value is a note
// and renders as a bare line.
type Field struct {
	Name  string
	Value string
}

// Details are the platform-specific battery attributes, in display order.
type Details []Field

// Add appends a named attribute.
func (d *Details) Add(name, value string) {
	*d = append(*d, Field{Name: name, Value: value})
}

// Note appends a free-form line.
func (d *Details) Note(text string) {
	*d = append(*d, Field{Name: text})
}

// Get returns the value of the first field called name.
func (d Details) Get(name string) (string, bool) {
	for _, f := range d {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func (d Details) String() string {
	var sb strings.Builder
	for _, f := range d {
		sb.WriteString(f.Name)
		if f.Value != "" {
			sb.WriteString(": ")
			sb.WriteString(f.Value)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
