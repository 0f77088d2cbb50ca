package statusbar

import (
	"fmt"
	"os/exec"
)

// Refresh asks waybar to re-run its custom modules by sending the
// realtime signal it is configured to listen on. A signal of 0 is a
// no-op. Failures are ignored: the bar may not be running, and a missed
// refresh corrects itself on the next poll.
func Refresh(signal int) {
	if signal <= 0 {
		return
	}
	cmd := exec.Command("pkill", fmt.Sprintf("-RTMIN+%d", signal), "waybar")
	_ = cmd.Run()
}
