package services

import (
	"testing"
	"time"
)

func TestScheduleValidatesRange(t *testing.T) {
	s := NewReminderService(nil)

	if _, err := s.Schedule(25, 0); err != ErrReminderHours {
		t.Errorf("Schedule(25, 0) err = %v, want ErrReminderHours", err)
	}
	if _, err := s.Schedule(-1, 0); err != ErrReminderHours {
		t.Errorf("Schedule(-1, 0) err = %v, want ErrReminderHours", err)
	}
	if _, err := s.Schedule(0, 60); err != ErrReminderMinutes {
		t.Errorf("Schedule(0, 60) err = %v, want ErrReminderMinutes", err)
	}
	if _, err := s.Schedule(0, -1); err != ErrReminderMinutes {
		t.Errorf("Schedule(0, -1) err = %v, want ErrReminderMinutes", err)
	}
	if len(s.Pending()) != 0 {
		t.Error("invalid schedules left pending reminders")
	}
}

func TestScheduleComputesFireTime(t *testing.T) {
	s := NewReminderService(nil)
	defer func() {
		for _, r := range s.Pending() {
			s.Cancel(r.ID)
		}
	}()

	before := time.Now()
	r, err := s.Schedule(1, 30)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	wantDelay := time.Hour + 30*time.Minute
	got := r.FireAt.Sub(before)
	if got < wantDelay-time.Second || got > wantDelay+time.Second {
		t.Errorf("fire delay = %v, want ~%v", got, wantDelay)
	}
	if len(s.Pending()) != 1 {
		t.Errorf("pending = %d, want 1", len(s.Pending()))
	}
}

func TestCancelStopsPendingReminder(t *testing.T) {
	s := NewReminderService(func(Reminder) { t.Error("cancelled reminder fired") })

	r, err := s.Schedule(24, 59)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if !s.Cancel(r.ID) {
		t.Error("Cancel = false for a pending reminder")
	}
	if s.Cancel(r.ID) {
		t.Error("Cancel = true the second time")
	}
	if len(s.Pending()) != 0 {
		t.Errorf("pending = %d, want 0", len(s.Pending()))
	}
}

func TestReminderFires(t *testing.T) {
	fired := make(chan Reminder, 1)
	s := NewReminderService(func(r Reminder) { fired <- r })

	r := s.scheduleIn(10 * time.Millisecond)
	select {
	case got := <-fired:
		if got.ID != r.ID {
			t.Errorf("fired %q, want %q", got.ID, r.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("reminder did not fire")
	}
	if len(s.Pending()) != 0 {
		t.Errorf("pending = %d after firing, want 0", len(s.Pending()))
	}
}
