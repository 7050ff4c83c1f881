package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reEmp   = regexp.MustCompile(`^(FULL_TIME|PART_TIME|CONTRACT|INTERNSHIP)$`)
	reLevel = regexp.MustCompile(`^(ENTRY|MID|SENIOR)$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a simple length window; bcrypt ignores input past 72 bytes.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// ID validates a simple resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func EmploymentType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reEmp.MatchString(s)
}

func Level(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reLevel.MatchString(s)
}

// Page parses a 1-based page number, clamped to a sane window.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 1000 {
		return 1000
	}
	return n
}
