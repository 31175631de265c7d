package analyze

// Summary length choices as the UI offers them.
const (
	LengthShort         = "short"
	LengthMedium        = "medium"
	LengthLong          = "long"
	LengthComprehensive = "comprehensive"
)

// Output formats for the exported artifact.
const (
	FormatPDF  = "pdf"
	FormatDocx = "docx"
	FormatTex  = "tex"
)

// FocusAreas is the fixed vocabulary of focus tags the UI offers.
var FocusAreas = []string{
	"key-findings",
	"methodology",
	"results",
	"conclusions",
	"references",
	"math",
}

// Customization holds the user-selected summary preferences. The three
// facets are independent; any value the UI offers is valid as-is.
type Customization struct {
	SummaryLength string
	FocusAreas    []string
	OutputFormat  string
}

// DefaultCustomization returns the initial selection.
func DefaultCustomization() Customization {
	return Customization{
		SummaryLength: LengthMedium,
		FocusAreas:    []string{"key-findings", "methodology"},
		OutputFormat:  FormatPDF,
	}
}

// ToggleFocusArea flips set membership: adds the area if absent, removes it
// if present. Serialization order is current membership order.
func (c *Customization) ToggleFocusArea(area string) {
	for i, a := range c.FocusAreas {
		if a == area {
			c.FocusAreas = append(c.FocusAreas[:i], c.FocusAreas[i+1:]...)
			return
		}
	}
	c.FocusAreas = append(c.FocusAreas, area)
}

// HasFocusArea reports current membership of a focus tag.
func (c *Customization) HasFocusArea(area string) bool {
	for _, a := range c.FocusAreas {
		if a == area {
			return true
		}
	}
	return false
}
