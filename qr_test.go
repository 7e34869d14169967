package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWifiQRPayload(t *testing.T) {
	assert.Equal(t, `WIFI:S:Home;T:WPA;P:hunter2;;;`, wifiQRPayload("Home", "hunter2"))
	assert.Equal(t, `WIFI:S:Open Cafe;T:nopass;;;`, wifiQRPayload("Open Cafe", ""))

	// Reserved characters in either field are backslash-escaped.
	assert.Equal(t, `WIFI:S:a\;b\:c;T:WPA;P:x\,y\"z\\;;;`, wifiQRPayload(`a;b:c`, `x,y"z\`))
}

func TestPrintWifiQR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printWifiQR(&buf, "Home", "hunter2"))
	assert.Greater(t, strings.Count(buf.String(), "\n"), 10)
}
