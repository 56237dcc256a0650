package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseWithTimeout(t *testing.T) {
	t.Parallel()

	errClose := errors.New("session already closed")

	tests := []struct {
		name        string
		closeFn     func() error
		wantErr     error
		errContains string
	}{
		{
			name:    "waits for a slow close",
			closeFn: func() error { time.Sleep(50 * time.Millisecond); return nil },
		},
		{
			name:    "returns the close error",
			closeFn: func() error { return errClose },
			wantErr: errClose,
		},
		{
			name:        "gives up after the timeout",
			closeFn:     func() error { time.Sleep(time.Second); return nil },
			errContains: "shutdown timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := time.Now()
			err := closeWithTimeout(tt.closeFn, 200*time.Millisecond)
			elapsed := time.Since(start)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Less(t, elapsed, time.Second)
			default:
				require.NoError(t, err)
				assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
			}
		})
	}
}
