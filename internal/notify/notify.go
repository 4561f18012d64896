// Package notify decides when to nudge the player with a desktop notification
// while the server runs, and sends it.
package notify

import (
	"fmt"

	"github.com/osse101/questgame/internal/config"
	"github.com/osse101/questgame/internal/domain"
)

// StreakMention is the streak from which the choose reminder mentions it
const StreakMention = 3

// Notification is one reminder. Key identifies it for deduplication.
type Notification struct {
	Key   string
	Title string
	Body  string
}

// Schedule is the local-hour window reminders are sent in
type Schedule struct {
	StartHour  int
	EndHour    int
	FocusHour  int
	UrgentHour int
}

// ScheduleFromConfig copies the hour settings
func ScheduleFromConfig(c config.NotifyConfig) Schedule {
	return Schedule{
		StartHour:  c.StartHour,
		EndHour:    c.EndHour,
		FocusHour:  c.FocusHour,
		UrgentHour: c.UrgentHour,
	}
}

// Snapshot is what a check looks at. Date is the game calendar date, Hour the local hour.
type Snapshot struct {
	State domain.State
	Today domain.Today
	Date  string
	Hour  int
}

func (s Schedule) inWindow(hour int) bool {
	return hour >= s.StartHour && hour <= s.EndHour
}

// Plan returns the reminders due for snap, before deduplication
func Plan(snap Snapshot, sch Schedule) []Notification {
	var out []Notification
	if !sch.inWindow(snap.Hour) {
		return out
	}

	if snap.State.DailySpinDate != snap.Date {
		out = append(out, Notification{
			Key:   "spin-" + snap.Date,
			Title: "QuestGame - Roleta Diaria!",
			Body:  "Gire a roleta diaria e tente ganhar premios!",
		})
	}

	p := snap.State.Player
	if p.LastDoneDate != nil && *p.LastDoneDate == snap.Date {
		return out
	}

	q := snap.Today.Quest()
	if q == nil {
		n := Notification{
			Key:   fmt.Sprintf("choose-%s-%d", snap.Date, snap.Hour),
			Title: "QuestGame",
			Body:  "Hora de escolher a task do dia! Abra o jogo e planeje.",
		}
		if p.Streak >= StreakMention {
			n.Title = "QuestGame - Escolha sua quest!"
			n.Body = fmt.Sprintf("Streak de %d dias! Abra o jogo e escolha a task do dia.", p.Streak)
		}
		return append(out, n)
	}

	if snap.Hour < sch.FocusHour {
		return out
	}
	title := q.Title
	if title == "" {
		title = "sua quest"
	}
	n := Notification{
		Key:   fmt.Sprintf("do-%s-%d", snap.Date, snap.Hour),
		Title: "QuestGame - Foca na quest!",
		Body:  fmt.Sprintf("\"%s\" — %d steps restantes. Bora finalizar!", title, q.RemainingSteps()),
	}
	if snap.Hour >= sch.UrgentHour {
		n.Title = "QuestGame - Ultimas horas!"
		n.Body = fmt.Sprintf("\"%s\" tem %d steps pendentes. Termina hoje!", title, q.RemainingSteps())
	}
	return append(out, n)
}
