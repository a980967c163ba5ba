package cdkbridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	require.NotEmpty(t, info.Version)
	require.NotEmpty(t, info.GoVersion)
	require.NotEmpty(t, info.OS)
	require.NotEmpty(t, info.Arch)
	require.Len(t, info.KeyValues(), 12)
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	require.Contains(t, buf.String(), "Version:      "+Version)
	require.Contains(t, buf.String(), "OS/Arch:")
}
