package u16view

// CaseSensitivity selects exact or case-folded matching.
type CaseSensitivity uint8

const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

func (cs CaseSensitivity) fold() bool { return cs == CaseInsensitive }

func (cs CaseSensitivity) String() string {
	if cs == CaseInsensitive {
		return "insensitive"
	}
	return "sensitive"
}

// SplitBehavior controls whether Split and Tokenize report empty parts.
type SplitBehavior uint8

const (
	KeepEmptyParts SplitBehavior = iota
	SkipEmptyParts
)

func (b SplitBehavior) String() string {
	if b == SkipEmptyParts {
		return "skip"
	}
	return "keep"
}
