package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronTrigger(t *testing.T) {
	trigger, err := NewCronTrigger("*/15 * * * *")
	require.NoError(t, err)

	next := trigger.NextTime(utc(2025, 8, 2, 10, 30))
	require.NotNil(t, next)
	assert.Equal(t, utc(2025, 8, 2, 10, 45), *next)
}

func TestCronTriggerInvalidExpression(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "garbage", expression: "invalid"},
		{name: "too few fields", expression: "0 9 * *"},
		{name: "too many fields", expression: "0 9 * * * *"},
		{name: "step on a name", expression: "* * * * */Fri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCronTrigger(tt.expression)
			assert.Error(t, err)
		})
	}
}

func TestCronTriggerNeverFires(t *testing.T) {
	trigger, err := NewCronTrigger("0 0 30 2 *")
	require.NoError(t, err)
	assert.Nil(t, trigger.NextTime(utc(2020, 1, 1, 0, 0)))
}

func TestCronTriggerHashStable(t *testing.T) {
	a, err := NewCronTrigger("0 9 * * 1-5")
	require.NoError(t, err)
	b, err := NewCronTrigger("0 9 * * 1-5")
	require.NoError(t, err)
	c, err := NewCronTrigger("0 9 * * 2-5")
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestSunTrigger(t *testing.T) {
	// San Antonio; an afternoon reference so sunrise has passed but
	// sunset has not.
	ref := time.Date(2025, 8, 2, 19, 0, 0, 0, time.UTC)

	rise := NewSunriseTrigger(29.4241, -98.4936, 0).NextTime(ref)
	require.NotNil(t, rise)
	assert.True(t, rise.After(ref))

	set := NewSunsetTrigger(29.4241, -98.4936, 0).NextTime(ref)
	require.NotNil(t, set)
	assert.True(t, set.After(ref))
	assert.True(t, set.Before(*rise), "tonight's sunset precedes tomorrow's sunrise")
}

func TestSunTriggerOffset(t *testing.T) {
	ref := time.Date(2025, 8, 2, 19, 0, 0, 0, time.UTC)

	base := NewSunsetTrigger(29.4241, -98.4936, 0).NextTime(ref)
	offset := NewSunsetTrigger(29.4241, -98.4936, -30*time.Minute).NextTime(ref)
	require.NotNil(t, base)
	require.NotNil(t, offset)
	assert.Equal(t, base.Add(-30*time.Minute), *offset)
}

func TestSunTriggerHashDistinguishesEvents(t *testing.T) {
	rise := NewSunriseTrigger(29.4241, -98.4936, 0)
	set := NewSunsetTrigger(29.4241, -98.4936, 0)
	assert.NotEqual(t, rise.Hash(), set.Hash())
}
