package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appconfig "max.ks1230/expense-tracker/internal/config"
)

func Test_OnNewDisplay_ShouldFormatCurrentDateAndTime(t *testing.T) {
	d := NewDisplay(&appconfig.AppConfig{ClockTickSeconds: 1})

	now := d.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, now.Format("02/01/2006"), d.DateString())
	assert.Equal(t, now.Format("15:04:05"), d.TimeString())
}

func Test_OnDoneContext_ShouldStopRefreshing(t *testing.T) {
	d := NewDisplay(&appconfig.AppConfig{ClockTickSeconds: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clock refresh did not stop")
	}
}
