package gateway

import (
	"fmt"
	"strings"
)

// SystemPrompt fixes the assistant's role for every analysis request.
const SystemPrompt = `You are an expert academic research analyst. Your task is to analyze and summarize research papers, articles, and academic projects.
Provide clear, accurate, and well-structured summaries that capture the essence of the research.
Always maintain academic integrity and accurately represent the original work's findings and conclusions.`

// lengthGuide describes each summary length tier for the model.
var lengthGuide = map[string]string{
	"brief":         "2-3 paragraphs, around 200 words",
	"standard":      "4-6 paragraphs, around 500 words",
	"detailed":      "8-10 paragraphs, around 1000 words",
	"comprehensive": "comprehensive coverage, around 1500-2000 words",
}

// BuildUserPrompt assembles the analysis instruction: length tier, optional
// focus clause, format clause, the fixed five-section outline, and the
// content verbatim.
func BuildUserPrompt(content, summaryLength string, focusAreas []string, outputFormat string) string {
	guide, ok := lengthGuide[summaryLength]
	if !ok {
		guide = lengthGuide["standard"]
	}

	focusAreasText := ""
	if len(focusAreas) > 0 {
		focusAreasText = fmt.Sprintf("Focus especially on: %s.", strings.Join(focusAreas, ", "))
	}

	formatInstructions := "Format the output in clean Markdown with headers, bullet points, and numbered lists."
	if outputFormat == "tex" || outputFormat == "latex" {
		formatInstructions = `Format the output as LaTeX document with proper \section{}, \subsection{}, and mathematical notation where appropriate.`
	}

	return fmt.Sprintf(`Please analyze and summarize the following research content.

Summary Length: %s
%s
%s

Structure your analysis with these sections:
1. **Key Findings** - The main discoveries and contributions
2. **Methodology** - Research approach and methods used
3. **Main Results** - Quantitative and qualitative outcomes
4. **Conclusions** - Final takeaways and implications
5. **Limitations & Future Work** - (if mentioned in the source)

Research Content:
%s`, guide, focusAreasText, formatInstructions, content)
}
