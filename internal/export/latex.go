package export

import (
	"fmt"
	"regexp"
	"strings"
)

// escapeRules backslash-prefixes the LaTeX-special characters, applied in
// table order before any structural substitution.
var escapeRules = []struct {
	old string
	new string
}{
	{`&`, `\&`},
	{`%`, `\%`},
	{`#`, `\#`},
	{`$`, `\$`},
	{`_`, `\_`},
}

// structuralRules translate Markdown structure into LaTeX, applied in table
// order after escaping. The order is an invariant: bold spans first, then
// headers, then list items. The header patterns match the escaped form of
// the marker (`\#\# `), since escaping has already run by this point.
var structuralRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), `\textbf{${1}}`},
	{regexp.MustCompile(`(?m)^\\#\\# (.*)$`), `\section{${1}}`},
	{regexp.MustCompile(`(?m)^\\#\\#\\# (.*)$`), `\subsection{${1}}`},
	{regexp.MustCompile(`(?m)^- (.*)$`), `\item ${1}`},
	{regexp.MustCompile(`(?m)^\d+\. (.*)$`), `\item ${1}`},
}

const latexDocument = `\documentclass{article}
\usepackage[utf8]{inputenc}
\usepackage{enumitem}
\title{Research4Me - Analysis Report}
\date{\today}

\begin{document}
\maketitle

%s

\end{document}`

// escapeLaTeX applies the escape table to raw summary text.
func escapeLaTeX(text string) string {
	for _, r := range escapeRules {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return text
}

// translateMarkdown applies the structural substitution table.
func translateMarkdown(text string) string {
	for _, r := range structuralRules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

// renderLaTeX escapes the summary, translates its Markdown structure, and
// wraps the result in the fixed document preamble and postamble.
func renderLaTeX(summaryText string) string {
	body := translateMarkdown(escapeLaTeX(summaryText))
	return fmt.Sprintf(latexDocument, body)
}
