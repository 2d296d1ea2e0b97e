package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrReminderHours   = errors.New("hours must be between 0 and 24")
	ErrReminderMinutes = errors.New("minutes must be between 0 and 59")
)

// Reminder is a pending one-shot drink notification. Reminders live in
// memory only; they do not survive a restart.
type Reminder struct {
	ID     string    `json:"id"`
	FireAt time.Time `json:"fire_at"`
}

// ReminderService arms one-shot timers and invokes the fired callback
// (typically the alert bus) when they go off.
type ReminderService struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]Reminder
	fire    func(Reminder)
}

func NewReminderService(fire func(Reminder)) *ReminderService {
	return &ReminderService{
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]Reminder),
		fire:    fire,
	}
}

// Schedule arms a reminder hours and minutes from now.
func (s *ReminderService) Schedule(hours, minutes int) (Reminder, error) {
	if hours < 0 || hours > 24 {
		return Reminder{}, ErrReminderHours
	}
	if minutes < 0 || minutes > 59 {
		return Reminder{}, ErrReminderMinutes
	}
	delay := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	return s.scheduleIn(delay), nil
}

func (s *ReminderService) scheduleIn(delay time.Duration) Reminder {
	r := Reminder{ID: uuid.NewString(), FireAt: time.Now().Add(delay)}

	s.mu.Lock()
	s.pending[r.ID] = r
	s.timers[r.ID] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, r.ID)
		delete(s.pending, r.ID)
		s.mu.Unlock()
		if s.fire != nil {
			s.fire(r)
		}
	})
	s.mu.Unlock()
	return r
}

// Cancel stops a pending reminder. A reminder that already fired reports
// false.
func (s *ReminderService) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, id)
	delete(s.pending, id)
	return true
}

// Pending lists armed reminders ordered by fire time.
func (s *ReminderService) Pending() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reminder, 0, len(s.pending))
	for _, r := range s.pending {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}
