package routes

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	originWidth      = 30
	destinationWidth = 20
	numberWidth      = 8
)

// Table captions and the empty-list notice.
const (
	StartCaption  = "Start"
	EndCaption    = "End"
	NumberCaption = "Number"
	EmptyNotice   = "Route list is empty."
)

// Render prints rs as a bordered table, or EmptyNotice when there is nothing to show.
func Render(w io.Writer, rs []Route) error {
	if len(rs) == 0 {
		_, err := fmt.Fprintln(w, EmptyNotice)
		return err
	}

	line := fmt.Sprintf("+-%s-+-%s-+-%s-+",
		strings.Repeat("-", originWidth),
		strings.Repeat("-", destinationWidth),
		strings.Repeat("-", numberWidth),
	)

	var b strings.Builder
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		center(StartCaption, originWidth),
		center(EndCaption, destinationWidth),
		center(NumberCaption, numberWidth),
	)
	b.WriteString(line + "\n")
	for _, r := range rs {
		fmt.Fprintf(&b, "| %-*s | %-*s | %*d |\n",
			originWidth, r.Origin,
			destinationWidth, r.Destination,
			numberWidth, r.Number,
		)
	}
	b.WriteString(line + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// center pads s to width runes, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
