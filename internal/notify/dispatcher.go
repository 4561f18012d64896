package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultSound is the macOS sound played with every reminder
const DefaultSound = "Glass"

// Dispatcher delivers a reminder to the desktop
type Dispatcher interface {
	Send(ctx context.Context, title, body string) error
}

// OSAScript sends notifications through osascript on macOS
type OSAScript struct {
	Sound string
}

// Send implements Dispatcher
func (o OSAScript) Send(ctx context.Context, title, body string) error {
	sound := o.Sound
	if sound == "" {
		sound = DefaultSound
	}
	cmd := exec.CommandContext(ctx, "osascript", "-e", AppleScript(title, body, sound))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// AppleScript renders the display notification statement
func AppleScript(title, body, sound string) string {
	return fmt.Sprintf(`display notification "%s" with title "%s" sound name "%s"`,
		escape(body), escape(title), escape(sound))
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
