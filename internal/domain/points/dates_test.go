package points

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		raw  string
		want string
	}{
		{"23/05/2024", "2024-05-23"},
		{"2024-05-23", "2024-05-23"},
		{"2024-05-23T14:30:00-03:00", "2024-05-23"},
		{"3/5/2024", "2024-05-03"},
		{"23/05/24", "2024-05-23"},
		{"23-05-2024", "2024-05-23"},
		{"23.05.2024", "2024-05-23"},
		{"23/05/2024 10:32:11", "2024-05-23"},
		{"31/02/2024", "2024-06-10"},
		{"2024-13-40", "2024-06-10"},
		{"", "2024-06-10"},
		{"ontem", "2024-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizeDate(tt.raw, now)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}
