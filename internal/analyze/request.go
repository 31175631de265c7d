package analyze

// Request is the payload sent to the analyze endpoint. Content must be
// non-empty; the aggregator precondition guarantees that before any request
// is constructed.
type Request struct {
	Content       string   `json:"content"`
	SummaryLength string   `json:"summaryLength"`
	FocusAreas    []string `json:"focusAreas"`
	OutputFormat  string   `json:"outputFormat"`
}

// lengthMappings translates UI length choices into the request vocabulary.
// Kept as an ordered table so the mapping is data, not code order.
var lengthMappings = []struct {
	ui      string
	request string
}{
	{LengthShort, "brief"},
	{LengthMedium, "standard"},
	{LengthLong, "detailed"},
	{LengthComprehensive, "comprehensive"},
}

// MapLength converts a UI summary length into the request vocabulary.
// Unrecognized values default to "standard".
func MapLength(uiLength string) string {
	for _, m := range lengthMappings {
		if m.ui == uiLength {
			return m.request
		}
	}
	return "standard"
}

// NewRequest assembles the outbound request from aggregated content and the
// current customization. Performs no I/O.
func NewRequest(content string, c Customization) Request {
	return Request{
		Content:       content,
		SummaryLength: MapLength(c.SummaryLength),
		FocusAreas:    c.FocusAreas,
		OutputFormat:  c.OutputFormat,
	}
}
