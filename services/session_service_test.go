package services

import "testing"

func TestLoginStoresProfileAndIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newTestStore(t)
	s := NewSessionService(store)

	token, session, err := s.Login("Jan", "1800")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if !session.IsLoggedIn || session.Username != "Jan" || session.DailyGoal != 1800 {
		t.Errorf("session = %+v", session)
	}
	if !store.GetBool(KeyIsLoggedIn, false) {
		t.Error("is_logged_in not persisted")
	}
	if got := store.GetFloat(KeyDailyGoal, 0); got != 1800 {
		t.Errorf("daily_goal = %v, want 1800", got)
	}
}

func TestLoginRejectsBlankUsername(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := NewSessionService(newTestStore(t))

	if _, _, err := s.Login("   ", "2000"); err != ErrBlankUsername {
		t.Errorf("err = %v, want ErrBlankUsername", err)
	}
}

func TestLoginGoalFallsBackToDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := NewSessionService(newTestStore(t))

	for _, goal := range []string{"abc", "", "-100", "0"} {
		_, session, err := s.Login("Jan", goal)
		if err != nil {
			t.Fatalf("Login(%q): %v", goal, err)
		}
		if session.DailyGoal != DefaultDailyGoal {
			t.Errorf("Login(%q).DailyGoal = %v, want %v", goal, session.DailyGoal, DefaultDailyGoal)
		}
	}
}

func TestLogoutClearsFlagOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := newTestStore(t)
	s := NewSessionService(store)

	if _, _, err := s.Login("Jan", "2000"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	cur := s.Current()
	if cur.IsLoggedIn {
		t.Error("still logged in after Logout")
	}
	if cur.Username != "Jan" || cur.DailyGoal != 2000 {
		t.Errorf("profile lost on logout: %+v", cur)
	}
}
