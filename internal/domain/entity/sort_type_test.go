package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotificationSortType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    NotificationSortType
		wantErr bool
	}{
		{name: "recent", raw: "RECENT", want: SortRecent},
		{name: "unread first", raw: "UNREAD_FIRST", want: SortUnreadFirst},
		{name: "empty defaults to recent", raw: "", want: SortRecent},
		{name: "lowercase rejected", raw: "recent", wantErr: true},
		{name: "unknown rejected", raw: "OLDEST", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseNotificationSortType(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSortType)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
