package messages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnParseCommand_ShouldSplitCommandAndArgument(t *testing.T) {
	cases := []struct {
		text string
		cmd  string
		arg  string
	}{
		{"/add 100 Food", "/add", "100 Food"},
		{"/report", "/report", ""},
		{"  /save out.xlsx ", "/save", "out.xlsx"},
		{"hello there", "hello", "there"},
		{"hello", "", "hello"},
	}
	for _, tc := range cases {
		cmd, arg := parseCommand(tc.text)
		assert.Equal(t, tc.cmd, cmd, tc.text)
		assert.Equal(t, tc.arg, arg, tc.text)
	}
}

func Test_OnFormatTable_ShouldRenderFourColumns(t *testing.T) {
	created := time.Date(2024, 11, 2, 15, 4, 5, 0, time.UTC)

	table, err := formatTable([]expense.Record{
		{Amount: 100, Category: "Food", Created: created},
	}, "₹")

	assert.NoError(t, err)
	assert.Contains(t, table, "Amount")
	assert.Contains(t, table, "₹100.00")
	assert.Contains(t, table, "02/11/2024")
	assert.Contains(t, table, "15:04:05")
}
