package ui

import "fmt"

// Instruction is a broadcast understood by windows of one mode. The
// concrete types are BasicInstruction, EditBoxInstruction,
// MenuInstruction and MessageBoxInstruction.
type Instruction interface {
	// Target is the mode of window the instruction applies to.
	Target() Mode
	String() string
	instruction()
}

// BasicInstruction drives the animations and patterns of a basic window.
type BasicInstruction int

const (
	DecState BasicInstruction = iota
	IncState
	IndexState
	DecFrame
	IncFrame
	IndexFrame
	ResetState
	SwitchPatternLock
	basicInstructionCount
)

// EditBoxInstruction drives an edit box.
type EditBoxInstruction int

const (
	// AddCharacter and RemoveCharacter are accepted and ignored.
	AddCharacter EditBoxInstruction = iota
	RemoveCharacter
	SaveEntry
	DecReadMode
	IncReadMode
	IndexReadMode
	editBoxInstructionCount
)

// MenuInstruction drives a menu.
type MenuInstruction int

const (
	PreviousItem MenuInstruction = iota
	NextItem
	ToggleLeft
	ToggleRight
	// ToggleLeftAll and ToggleRightAll are accepted and ignored.
	ToggleLeftAll
	ToggleRightAll
	menuInstructionCount
)

// MessageBoxInstruction drives a message box.
type MessageBoxInstruction int

const (
	// PreviousMessage, NextMessage and IndexMessage restart the reveal at
	// another loaded message, wrapping around.
	PreviousMessage MessageBoxInstruction = iota
	NextMessage
	IndexMessage
	DecWriteMode
	IncWriteMode
	IndexWriteMode
	messageBoxInstructionCount
)

var (
	basicNames      = [...]string{"dec_state", "inc_state", "index_state", "dec_frame", "inc_frame", "index_frame", "reset_state", "switch_pattern_lock"}
	editBoxNames    = [...]string{"add_character", "remove_character", "save_message", "dec_read_mode", "inc_read_mode", "index_read_mode"}
	menuNames       = [...]string{"previous_item", "next_item", "toggle_left", "toggle_right", "toggle_left_all", "toggle_right_all"}
	messageBoxNames = [...]string{"previous_message", "next_message", "index_message", "dec_write_mode", "inc_write_mode", "index_write_mode"}
)

func name(names []string, v int, kind string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func (BasicInstruction) Target() Mode      { return ModeBasic }
func (EditBoxInstruction) Target() Mode    { return ModeEditBox }
func (MenuInstruction) Target() Mode       { return ModeMenu }
func (MessageBoxInstruction) Target() Mode { return ModeMessageBox }

func (i BasicInstruction) String() string { return name(basicNames[:], int(i), "BasicInstruction") }
func (i EditBoxInstruction) String() string {
	return name(editBoxNames[:], int(i), "EditBoxInstruction")
}
func (i MenuInstruction) String() string { return name(menuNames[:], int(i), "MenuInstruction") }
func (i MessageBoxInstruction) String() string {
	return name(messageBoxNames[:], int(i), "MessageBoxInstruction")
}

func (BasicInstruction) instruction()      {}
func (EditBoxInstruction) instruction()    {}
func (MenuInstruction) instruction()       {}
func (MessageBoxInstruction) instruction() {}

// ParseInstruction resolves an instruction name for a receiver of the
// given mode.
func ParseInstruction(target Mode, s string) (Instruction, error) {
	var names []string
	switch target {
	case ModeBasic:
		names = basicNames[:]
	case ModeEditBox:
		names = editBoxNames[:]
	case ModeMenu:
		names = menuNames[:]
	case ModeMessageBox:
		names = messageBoxNames[:]
	default:
		return nil, fmt.Errorf("%w: mode %v", ErrUnsupported, target)
	}
	for i, n := range names {
		if n != s {
			continue
		}
		switch target {
		case ModeBasic:
			return BasicInstruction(i), nil
		case ModeEditBox:
			return EditBoxInstruction(i), nil
		case ModeMenu:
			return MenuInstruction(i), nil
		default:
			return MessageBoxInstruction(i), nil
		}
	}
	return nil, fmt.Errorf("%w: %s instruction %q", ErrUnsupported, target, s)
}
