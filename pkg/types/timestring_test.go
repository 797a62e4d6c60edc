package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("8:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:05"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("08:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), next)

	_, err = TimeString("23:00").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.False(t, TimeString("bad").IsBefore("12:00"))
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("18:00").Validate())
	assert.ErrorIs(t, TimeString("18h").Validate(), ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("10:15")))
	assert.Equal(t, TimeString("10:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}
