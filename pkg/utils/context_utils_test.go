package utils_test

import (
	"strings"
	"testing"

	"github.com/NeuralTrust/MailSlot/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserAgent_Desktop(t *testing.T) {
	info := utils.ParseUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	require.NotNil(t, info)

	assert.Equal(t, "Computer", info.Device)
	assert.True(t, strings.HasPrefix(info.Browser, "BrowserChrome"), info.Browser)
	assert.True(t, strings.HasPrefix(info.OS, "OSWindows"), info.OS)
}

func TestParseUserAgent_Unknown(t *testing.T) {
	assert.Nil(t, utils.ParseUserAgent(""))
	assert.Equal(t, "unknown", utils.ParseUserAgent("").String())
}
