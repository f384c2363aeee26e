package messages

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

// formatTable renders the expenses as the four-column session table.
func formatTable(exps []expense.Record, symbol string) (string, error) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "Amount\tCategory\tDate\tTime")
	for _, exp := range exps {
		fmt.Fprintf(w, "%s%.2f\t%s\t%s\t%s\n",
			symbol, exp.Amount, exp.Category, exp.DateString(), exp.TimeString())
	}
	if err := w.Flush(); err != nil {
		return "", errors.Wrap(err, "format table")
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
