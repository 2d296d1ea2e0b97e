package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/JanHousa/DrinkWaterApp/utils"
)

var ErrBlankUsername = errors.New("username must not be blank")

type Session struct {
	IsLoggedIn bool    `json:"is_logged_in"`
	Username   string  `json:"username"`
	DailyGoal  float64 `json:"daily_goal"`
}

type SessionService struct {
	prefs *PrefStore
}

func NewSessionService(prefs *PrefStore) *SessionService {
	return &SessionService{prefs: prefs}
}

// Login stores the profile and issues a token. The daily goal is written
// here and nowhere else; an unparsable or non-positive goal falls back to
// the default without surfacing an error.
func (s *SessionService) Login(username, dailyGoal string) (string, Session, error) {
	if strings.TrimSpace(username) == "" {
		return "", Session{}, ErrBlankUsername
	}

	goal, err := strconv.ParseFloat(strings.TrimSpace(dailyGoal), 64)
	if err != nil || goal <= 0 {
		goal = DefaultDailyGoal
	}

	if err := s.prefs.SetString(KeyUsername, username); err != nil {
		return "", Session{}, err
	}
	if err := s.prefs.SetFloat(KeyDailyGoal, goal); err != nil {
		return "", Session{}, err
	}
	if err := s.prefs.SetBool(KeyIsLoggedIn, true); err != nil {
		return "", Session{}, err
	}

	token, err := utils.GenerateJWT(username)
	if err != nil {
		return "", Session{}, err
	}
	return token, Session{IsLoggedIn: true, Username: username, DailyGoal: goal}, nil
}

func (s *SessionService) Logout() error {
	return s.prefs.SetBool(KeyIsLoggedIn, false)
}

func (s *SessionService) Current() Session {
	return Session{
		IsLoggedIn: s.prefs.GetBool(KeyIsLoggedIn, false),
		Username:   s.prefs.GetString(KeyUsername, ""),
		DailyGoal:  s.prefs.GetFloat(KeyDailyGoal, DefaultDailyGoal),
	}
}

// DailyGoal reads the goal set at login.
func (s *SessionService) DailyGoal() float64 {
	return s.prefs.GetFloat(KeyDailyGoal, DefaultDailyGoal)
}
