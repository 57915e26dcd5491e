// Package navigation implements vim-style page movement and slide search
// for the preview.
package navigation

import "strconv"

// State is the current position in the deck along with any pending
// numeric buffer (e.g. the "3" in "3j").
type State struct {
	Buffer      string
	Page        int
	TotalSlides int
}

// Navigate returns the state after applying a key press.
func Navigate(state State, key string) State {
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return State{
			Buffer:      state.Buffer + key,
			Page:        state.Page,
			TotalSlides: state.TotalSlides,
		}
	case "j", "l", "down", "right", "enter", "n", " ", "pgdown":
		return move(state, state.Page+count(state))
	case "k", "h", "up", "left", "p", "pgup":
		return move(state, state.Page-count(state))
	case "g", "home":
		// An explicit count jumps to that slide, 1-based.
		if state.Buffer != "" {
			return move(state, count(state)-1)
		}
		return move(state, 0)
	case "G", "end":
		if state.Buffer != "" {
			return move(state, count(state)-1)
		}
		return move(state, state.TotalSlides-1)
	default:
		return State{Buffer: "", Page: state.Page, TotalSlides: state.TotalSlides}
	}
}

// count returns the numeric buffer as a repeat count, defaulting to 1.
func count(state State) int {
	n, err := strconv.Atoi(state.Buffer)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func move(state State, page int) State {
	if page < 0 {
		page = 0
	}
	if page > state.TotalSlides-1 {
		page = state.TotalSlides - 1
	}
	return State{Buffer: "", Page: page, TotalSlides: state.TotalSlides}
}
