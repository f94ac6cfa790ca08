package syntax

// Tag classifies one grapheme for display.
type Tag int8

const (
	Normal Tag = iota
	Number
	String
	CharLiteral
	Comment
	KeywordPrimary
	KeywordSecondary
)

func (t Tag) String() string {
	switch t {
	case Number:
		return "number"
	case String:
		return "string"
	case CharLiteral:
		return "char"
	case Comment:
		return "comment"
	case KeywordPrimary:
		return "keyword1"
	case KeywordSecondary:
		return "keyword2"
	}
	return "normal"
}
