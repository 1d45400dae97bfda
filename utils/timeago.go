package utils

import (
	"fmt"
	"time"
)

// TimeAgo returns a human-relative Spanish string for how long ago t was,
// e.g. "hace 3 días". Future timestamps collapse to "hace un momento".
func TimeAgo(t time.Time) string {
	return timeAgoFrom(t, time.Now())
}

func timeAgoFrom(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "hace un momento"
	case d < 2*time.Minute:
		return "hace 1 minuto"
	case d < time.Hour:
		return fmt.Sprintf("hace %d minutos", int(d.Minutes()))
	case d < 2*time.Hour:
		return "hace 1 hora"
	case d < 24*time.Hour:
		return fmt.Sprintf("hace %d horas", int(d.Hours()))
	case d < 48*time.Hour:
		return "hace 1 día"
	case d < 30*24*time.Hour:
		return fmt.Sprintf("hace %d días", int(d.Hours()/24))
	case d < 60*24*time.Hour:
		return "hace 1 mes"
	case d < 365*24*time.Hour:
		return fmt.Sprintf("hace %d meses", int(d.Hours()/(24*30)))
	case d < 2*365*24*time.Hour:
		return "hace 1 año"
	default:
		return fmt.Sprintf("hace %d años", int(d.Hours()/(24*365)))
	}
}
