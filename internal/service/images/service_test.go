package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestEncode(t *testing.T) {
	svc := NewService(nopLogger{})
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00}

	resp, err := svc.Encode("image/png", bytes.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload), resp.ImageURL)
}

func TestEncode_RoundTrip(t *testing.T) {
	svc := NewService(nopLogger{})
	payload := bytes.Repeat([]byte("lash"), 1000)

	resp, err := svc.Encode("image/jpeg", bytes.NewReader(payload))
	require.NoError(t, err)

	encoded := strings.TrimPrefix(resp.ImageURL, "data:image/jpeg;base64,")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestEncode_DefaultContentType(t *testing.T) {
	svc := NewService(nopLogger{})

	resp, err := svc.Encode("", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "data:application/octet-stream;base64,eA==", resp.ImageURL)
}

func TestEncode_Errors(t *testing.T) {
	svc := NewService(nopLogger{})

	_, err := svc.Encode("image/png", nil)
	require.ErrorIs(t, err, ErrEmptyFile)

	_, err = svc.Encode("image/png", failingReader{})
	require.ErrorIs(t, err, ErrInternal)
}
