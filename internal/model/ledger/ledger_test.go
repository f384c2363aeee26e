package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-tracker/internal/model/customerr"
)

func Test_OnAppend_ShouldGrowByOneAndKeepOrder(t *testing.T) {
	l := New()

	id, err := l.Append(100, "Food", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, id)

	id, err = l.Append(30, "Travel", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, id)

	all := l.All()
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "Travel", all[len(all)-1].Category)
	assert.Equal(t, 30.0, all[len(all)-1].Amount)
}

func Test_OnAppendEmptyCategory_ShouldRejectRecord(t *testing.T) {
	l := New()

	_, err := l.Append(100, "   ", time.Now())

	var vErr *customerr.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, l.Len())
}

func Test_OnAppendCategoryWithSpaces_ShouldTrimIt(t *testing.T) {
	l := New()

	_, err := l.Append(100, "  Food ", time.Now())

	assert.NoError(t, err)
	assert.Equal(t, "Food", l.All()[0].Category)
}

func Test_OnAppendNonPositiveAmount_ShouldStoreAsGiven(t *testing.T) {
	// the entry form only rejects input that does not parse as a number
	l := New()

	_, err := l.Append(0, "Food", time.Now())
	assert.NoError(t, err)
	_, err = l.Append(-5, "Food", time.Now())
	assert.NoError(t, err)

	assert.Equal(t, 2, l.Len())
}

func Test_OnAll_ShouldReturnCopy(t *testing.T) {
	l := New()
	_, err := l.Append(100, "Food", time.Now())
	assert.NoError(t, err)

	all := l.All()
	all[0].Category = "Changed"

	assert.Equal(t, "Food", l.All()[0].Category)
}
