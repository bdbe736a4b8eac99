package session

import "fmt"

// CommandKind identifies a transport intent.
type CommandKind int

const (
	CmdSelect CommandKind = iota
	CmdTogglePlayPause
	CmdPlay
	CmdPause
	CmdNext
	CmdPrevious
	CmdSeek
	CmdSkip
	CmdCycleRate
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdSelect:
		return "Select"
	case CmdTogglePlayPause:
		return "TogglePlayPause"
	case CmdPlay:
		return "Play"
	case CmdPause:
		return "Pause"
	case CmdNext:
		return "Next"
	case CmdPrevious:
		return "Previous"
	case CmdSeek:
		return "Seek"
	case CmdSkip:
		return "Skip"
	case CmdCycleRate:
		return "CycleRate"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a transport intent expressed as a value so it can cross
// goroutines and be applied on the UI loop.
type Command struct {
	Kind    CommandKind
	Index   int     // CmdSelect
	Seconds float64 // CmdSeek target, CmdSkip delta
}

// Apply dispatches cmd to the matching operation.
func (c *Controller) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdSelect:
		c.SelectEpisode(cmd.Index)
	case CmdTogglePlayPause:
		c.TogglePlayPause()
	case CmdPlay:
		if !c.state.IsPlaying {
			c.TogglePlayPause()
		}
	case CmdPause:
		// A pending play request counts too, or the lesson would start anyway.
		if c.state.IsPlaying || c.state.Loading {
			c.pause()
		}
	case CmdNext:
		c.Next()
	case CmdPrevious:
		c.Previous()
	case CmdSeek:
		c.Seek(cmd.Seconds)
	case CmdSkip:
		c.Skip(cmd.Seconds)
	case CmdCycleRate:
		c.CyclePlaybackRate()
	default:
		c.logger.Debug("unknown command", "kind", cmd.Kind)
	}
}
