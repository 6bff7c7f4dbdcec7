package model

// DataType tags the content held by a SimpleValue.
type DataType int

const (
	Null DataType = iota
	Number
	Binary
	Named
	Text
	Code
)

func (dt DataType) String() string {
	switch dt {
	case Null:
		return "Null"
	case Number:
		return "Number"
	case Binary:
		return "Binary"
	case Named:
		return "Named"
	case Text:
		return "Text"
	case Code:
		return "Code"
	default:
		return "Unknown"
	}
}

// SimpleValue pairs a DataType with its raw content string. Grammar
// constraints on content (number/binary/named form) are enforced by
// validate.SimpleValue, not here; construction is cheap and unconditional,
// matching how schema.Value is built by the teacher's parser before any
// normalization pass runs over it.
type SimpleValue struct {
	dataType DataType
	content  string
}

// NewSimpleValue builds a SimpleValue. Content is not validated against
// dataType; call validate.SimpleValue at the construction site per §4.5.
func NewSimpleValue(dataType DataType, content string) SimpleValue {
	return SimpleValue{dataType: dataType, content: content}
}

func (v SimpleValue) DataType() DataType {
	return v.dataType
}

func (v SimpleValue) Content() string {
	return v.content
}
