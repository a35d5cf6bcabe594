package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Format(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{
			name:  "zero",
			value: 0.0,
			want:  "0.000\r\n",
		},
		{
			name:  "full scale",
			value: 3.3,
			want:  "3.300\r\n",
		},
		{
			name:  "rounds to three decimals",
			value: 1.6499995,
			want:  "1.650\r\n",
		},
		{
			name:  "mid scale",
			value: 2048 * 3.3 / 4095.0,
			want:  "1.650\r\n",
		},
		{
			name:  "truncation rounds down",
			value: 0.8254,
			want:  "0.825\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(&buf)

			require.NoError(t, r.Report(tt.value))
			assert.Equal(t, tt.want, buf.String())
			assert.LessOrEqual(t, buf.Len(), LineCap, "line must fit the bounded buffer")
		})
	}
}

func TestReporter_OneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.Report(0.0))
	require.NoError(t, r.Report(1.65))
	require.NoError(t, r.Report(3.3))

	assert.Equal(t, "0.000\r\n1.650\r\n3.300\r\n", buf.String())
}

type failingWriter struct{ err error }

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestReporter_PropagatesWriteError(t *testing.T) {
	wantErr := errors.New("sink gone")
	r := New(&failingWriter{err: wantErr})

	err := r.Report(1.0)
	assert.ErrorIs(t, err, wantErr)
}
