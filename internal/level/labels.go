package level

// Cell labels used by level assets. Obstacles accept both the short asset
// form and the long name.
const (
	LabelRed    = "r"
	LabelGreen  = "g"
	LabelBlue   = "b"
	LabelYellow = "y"
	LabelRandom = "rand"
	LabelTNT    = "t"

	LabelBox   = "bo"
	LabelStone = "s"
	LabelVase  = "v"
)

// CubeLabels lists the cube colours in a fixed order.
var CubeLabels = []string{LabelRed, LabelGreen, LabelBlue, LabelYellow}

var knownLabels = map[string]bool{
	EmptyLabel:  true,
	LabelRed:    true,
	LabelGreen:  true,
	LabelBlue:   true,
	LabelYellow: true,
	LabelRandom: true,
	LabelTNT:    true,
	LabelBox:    true,
	"box":       true,
	LabelStone:  true,
	"stone":     true,
	LabelVase:   true,
	"vase":      true,
}

// IsKnownLabel reports whether the label is part of the asset vocabulary.
func IsKnownLabel(label string) bool {
	return knownLabels[label]
}

// IsCube reports whether the label is a coloured cube.
func IsCube(label string) bool {
	switch label {
	case LabelRed, LabelGreen, LabelBlue, LabelYellow:
		return true
	}
	return false
}
