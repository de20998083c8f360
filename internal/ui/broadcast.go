package ui

import "fmt"

// Broadcast applies an instruction to w. index is the sender's payload,
// for menus the chosen item.
func (w *Window) Broadcast(in Instruction, index int) error {
	if in == nil {
		return fmt.Errorf("%w: nil instruction", ErrUnsupported)
	}
	if in.Target() != w.Mode() {
		return fmt.Errorf("%w: %s sent to %s window", ErrModeMismatch, in, w.Mode())
	}
	switch c := w.content.(type) {
	case *BasicContent:
		return w.broadcastBasic(c, in.(BasicInstruction), index)
	case *EditBoxContent:
		return w.broadcastEditBox(c, in.(EditBoxInstruction), index)
	case *MenuContent:
		return w.broadcastMenu(c, in.(MenuInstruction))
	case *MessageBoxContent:
		return w.broadcastMessageBox(c, in.(MessageBoxInstruction), index)
	}
	return fmt.Errorf("%w: content %T", ErrUnsupported, w.content)
}

func (w *Window) broadcastBasic(c *BasicContent, in BasicInstruction, index int) error {
	if in < 0 || in >= basicInstructionCount {
		return fmt.Errorf("%w: %s", ErrUnsupported, in)
	}
	if c.Visuals == nil {
		return nil
	}
	for _, a := range c.Visuals.Animations {
		switch in {
		case DecState:
			a.SetState(a.CurState - 1)
		case IncState:
			a.SetState(a.CurState + 1)
		case IndexState:
			a.SetState(index)
		case DecFrame:
			a.SetFrame(float64(a.Frame() - 1))
		case IncFrame:
			a.SetFrame(float64(a.Frame() + 1))
		case IndexFrame:
			a.IndexFrame(index)
		case ResetState:
			a.SetFrame(0)
		}
	}
	if in == SwitchPatternLock {
		for _, p := range c.Visuals.Patterns {
			p.ToggleLock()
		}
	}
	return nil
}

func (w *Window) broadcastEditBox(c *EditBoxContent, in EditBoxInstruction, index int) error {
	io := c.IO
	switch in {
	case AddCharacter, RemoveCharacter:
		// Accepted without effect: a sender's index is not a character.
	case SaveEntry:
		return w.SaveMessage()
	case DecReadMode:
		io.Read = ReadMode(cycle(int(io.Read), -1, int(readModeCount)))
	case IncReadMode:
		io.Read = ReadMode(cycle(int(io.Read), 1, int(readModeCount)))
	case IndexReadMode:
		io.Read = ReadMode(cycle(index, 0, int(readModeCount)))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, in)
	}
	return nil
}

func (w *Window) broadcastMenu(c *MenuContent, in MenuInstruction) error {
	m := c.Menu
	switch in {
	case PreviousItem:
		MoveToPreviousItem(m, w)
	case NextItem:
		MoveToNextItem(m, w)
	case ToggleLeft:
		ToggleMenuItemLeft(m, w)
	case ToggleRight:
		ToggleMenuItemRight(m, w)
	case ToggleLeftAll, ToggleRightAll:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, in)
	}
	return nil
}

func (w *Window) broadcastMessageBox(c *MessageBoxContent, in MessageBoxInstruction, index int) error {
	io := c.IO
	switch in {
	case PreviousMessage:
		w.selectMessage(io, io.current-1)
	case NextMessage:
		w.selectMessage(io, io.current+1)
	case IndexMessage:
		// A menu sender selects the message matching its chosen item.
		w.selectMessage(io, index)
	case DecWriteMode:
		io.Write = WriteMode(cycle(int(io.Write), -1, int(writeModeCount)))
	case IncWriteMode:
		io.Write = WriteMode(cycle(int(io.Write), 1, int(writeModeCount)))
	case IndexWriteMode:
		io.Write = WriteMode(cycle(index, 0, int(writeModeCount)))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, in)
	}
	return nil
}
