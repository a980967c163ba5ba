package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testDurationStruct struct {
	Wait Duration `json:"wait"`
}

func TestDurationUnmarshal(t *testing.T) {
	tcs := []struct {
		input    string
		expected time.Duration
		err      bool
	}{
		{input: `{"wait":"10s"}`, expected: 10 * time.Second},
		{input: `{"wait":"1m30s"}`, expected: 90 * time.Second},
		{input: `{"wait":"300ms"}`, expected: 300 * time.Millisecond},
		{input: `{"wait":"ten"}`, err: true},
	}
	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			var s testDurationStruct
			err := json.Unmarshal([]byte(tc.input), &s)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, s.Wait.Duration)
		})
	}
}

func TestDurationMarshal(t *testing.T) {
	b, err := NewDuration(5 * time.Second).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "5s", string(b))
	require.Equal(t, "string", Duration{}.JSONSchema().Type)
}
