package assemble

import (
	"github.com/a-h/templ"

	"examgen/internal/exam"
	"examgen/internal/render"
)

// Preamble renders everything between the document class and the instructions:
// packages, running header and footer, the title box and the name field.
func Preamble(ex exam.Exam, label string) templ.Component {
	return templ.Join(
		packages(),
		headerFooter(ex, label),
		render.Lines(`\begin{document}`),
		titleBox(ex.Title),
		nameField(),
	)
}

func packages() templ.Component {
	return render.Lines(
		`\usepackage{tcolorbox}`,
		`\usepackage{listings}`,
		`\usepackage{tikz}`,
		`\lstset{basicstyle=\ttfamily,breaklines=true}`,
		`\lstset{framextopmargin=50pt,frame=bottomline}`,
		`\renewcommand\labelitemi{-}`,
	)
}

func headerFooter(ex exam.Exam, label string) templ.Component {
	return render.Lines(
		`\pagestyle{headandfoot}`,
		`\runningheadrule`,
		`\runningheader{`+ex.Course+`}{}{`+ex.Edition+`}`,
		`\firstpagefootrule`,
		`\firstpagefooter{`+ex.Date+`}{`+ex.Institution+`}{\thepage\,/\,\numpages}`,
		`\runningfootrule`,
		`\runningfooter{`+ex.Date+`}{`+label+`}{\thepage\,/\,\numpages}`,
		`\usepackage{etoolbox}`,
		`\BeforeBeginEnvironment{checkboxes}{\vspace*{0.25cm}\par\nopagebreak\minipage{\linewidth}}`,
		`\AfterEndEnvironment{checkboxes}{\vspace*{0.25cm}\endminipage}`,
	)
}

func titleBox(title string) templ.Component {
	return render.Lines(
		`\begin{tcolorbox}[width=\textwidth]`,
		`\section*{\centering `+title+`}`,
		`\end{tcolorbox}`,
		`\vspace{0.1in}`,
		`\thispagestyle{empty}`,
	)
}

func nameField() templ.Component {
	return render.Lines(
		`\begin{tikzpicture}[remember picture, overlay]`,
		`\node[below left] (coin)  at (16,4)`,
		`{\begin{tabular}{l p{7cm}}`,
		`Name \& Student ID: & \hrule \\`,
		`\end{tabular}`,
		`};`,
		`\end{tikzpicture}`,
		`\vspace{0.5cm}`,
	)
}

// Instructions renders the description lines as an itemized list.
func Instructions(lines []string) templ.Component {
	items := make([]templ.Component, 0, len(lines)+2)
	items = append(items, render.Lines(`\subsection*{Instructions}`, `\begin{itemize}`))
	for _, line := range lines {
		items = append(items, render.Lines(`\item{`+line+`}`))
	}
	items = append(items, render.Lines(`\end{itemize}`))
	return templ.Join(items...)
}
