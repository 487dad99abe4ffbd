package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	answerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	windowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39"))

	duplicateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("196"))

	foundStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// printAnswer writes one "Problem N: answer" line.
func printAnswer(w io.Writer, problem, answer int) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("Problem %d:", problem)), answerStyle.Render(fmt.Sprint(answer)))
}

// printAnswers writes the two puzzle answers.
func printAnswers(w io.Writer, part1, part2 int) {
	printAnswer(w, 1, part1)
	printAnswer(w, 2, part2)
}
