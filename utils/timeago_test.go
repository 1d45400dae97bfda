package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"just now", now.Add(-30 * time.Second), "hace un momento"},
		{"one minute", now.Add(-90 * time.Second), "hace 1 minuto"},
		{"minutes", now.Add(-45 * time.Minute), "hace 45 minutos"},
		{"one hour", now.Add(-90 * time.Minute), "hace 1 hora"},
		{"hours", now.Add(-5 * time.Hour), "hace 5 horas"},
		{"one day", now.Add(-30 * time.Hour), "hace 1 día"},
		{"days", now.Add(-72 * time.Hour), "hace 3 días"},
		{"one month", now.Add(-40 * 24 * time.Hour), "hace 1 mes"},
		{"months", now.Add(-100 * 24 * time.Hour), "hace 3 meses"},
		{"one year", now.Add(-400 * 24 * time.Hour), "hace 1 año"},
		{"years", now.Add(-800 * 24 * time.Hour), "hace 2 años"},
		{"future timestamp collapses", now.Add(10 * time.Minute), "hace un momento"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeAgoFrom(tt.t, now))
		})
	}
}
