package lineedit

import "github.com/unilibs/uniwidth"

// promptWidth returns the number of terminal columns the prompt occupies.
// Wide runes (CJK, emoji) count as 2, combining marks as 0, so absolute
// cursor positioning stays correct for non-ASCII prompts.
func promptWidth(prompt string) int {
	return uniwidth.StringWidth(prompt)
}
