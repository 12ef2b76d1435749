package play

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// players in order of preference, with the arguments that make them exit
// once the file has been played
var players = []struct {
	name string
	args []string
}{
	{"aplay", nil},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{"mpv", []string{"--no-video"}},
	{"vlc", []string{"--play-and-exit", "--intf", "dummy"}},
}

type Player struct {
	lookPath func(file string) (string, error)
	run      func(name string, args ...string) error
}

func New() *Player {
	return &Player{
		lookPath: exec.LookPath,
		run: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			return cmd.Run()
		},
	}
}

// Play blocks until the file has been played.
func (p *Player) Play(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("audio file not found: %s", path)
	}

	player, args, err := p.findAudioPlayer()
	if err != nil {
		return fmt.Errorf("no suitable audio player found: %w", err)
	}

	fmt.Printf("Playing: %s\n", path)
	slog.Debug("Starting audio player", "player", player, "file", path)

	if err := p.run(player, append(args, path)...); err != nil {
		return fmt.Errorf("playback failed with %s: %w", player, err)
	}

	fmt.Println("Playback completed")
	return nil
}

func (p *Player) findAudioPlayer() (string, []string, error) {
	tried := make([]string, 0, len(players))
	for _, candidate := range players {
		if _, err := p.lookPath(candidate.name); err == nil {
			args := make([]string, len(candidate.args))
			copy(args, candidate.args)
			return candidate.name, args, nil
		}
		tried = append(tried, candidate.name)
	}

	return "", nil, fmt.Errorf("no audio player found (tried: %s)", strings.Join(tried, ", "))
}
