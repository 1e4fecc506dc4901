package value

import "fmt"

// Kind identifies a Value variant.
type Kind int

const (
	KindNothing Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBinary
	KindRecord
	KindList
	KindDuration
	KindFilesize
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	case KindDuration:
		return "duration"
	case KindFilesize:
		return "filesize"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindOf returns the variant tag of v. A nil value counts as Nothing.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Bool:
		return KindBool
	case Int:
		return KindInt
	case Float:
		return KindFloat
	case String:
		return KindString
	case Binary:
		return KindBinary
	case Record:
		return KindRecord
	case List:
		return KindList
	case Duration:
		return KindDuration
	case Filesize:
		return KindFilesize
	case Date:
		return KindDate
	default:
		return KindNothing
	}
}
