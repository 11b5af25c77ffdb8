// Package identity decides who is playing and whether they may play.
package identity

import (
	"os"
	"os/user"
	"strings"
	"unicode"

	"github.com/charmbracelet/ssh"
)

// maxNameLen bounds display names shown on the HUD and leaderboard.
const maxNameLen = 16

// Gate is the host's answer to "can this player start a run, and under which
// name". A gate that cannot play keeps the game locked.
type Gate struct {
	CanPlay     bool
	DisplayName string
	Reason      string // shown on the locked overlay when CanPlay is false
}

// Local identifies the person at the local terminal. Local play is always
// allowed.
func Local() Gate {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	if name == "" {
		name = os.Getenv("USER")
	}
	return Gate{CanPlay: true, DisplayName: Sanitize(name)}
}

// ForSSH identifies a remote player. Key-authenticated sessions can play;
// password/keyboard-interactive sessions only when guests are allowed.
func ForSSH(user string, hasKey, allowGuests bool) Gate {
	g := Gate{DisplayName: Sanitize(user)}
	switch {
	case hasKey:
		g.CanPlay = true
	case allowGuests:
		g.CanPlay = true
		g.DisplayName = "guest:" + g.DisplayName
		g.DisplayName = truncate(g.DisplayName)
	default:
		g.Reason = "connect with an SSH key to play"
	}
	return g
}

// FromSession builds the gate for an SSH session.
func FromSession(s ssh.Session, allowGuests bool) Gate {
	return ForSSH(s.User(), s.PublicKey() != nil, allowGuests)
}

// Sanitize strips control and space characters and bounds the length.
// An empty result becomes "player".
func Sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	if name == "" {
		return "player"
	}
	return truncate(name)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxNameLen {
		return string(r[:maxNameLen])
	}
	return s
}
