package classify

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// counter provides token counting for prompt budgeting.
// Uses cl100k_base encoding.
type counter struct {
	enc  *tiktoken.Tiktoken
	once sync.Once
	err  error
}

var defaultCounter = &counter{}

// countTokens returns the number of tokens in the given text.
func countTokens(text string) int {
	return defaultCounter.count(text)
}

func (c *counter) count(text string) int {
	c.init()
	if c.err != nil || c.enc == nil {
		// Fallback: rough estimate (4 chars per token)
		return len(text) / 4
	}
	return len(c.enc.Encode(text, nil, nil))
}

func (c *counter) init() {
	c.once.Do(func() {
		c.enc, c.err = tiktoken.GetEncoding("cl100k_base")
	})
}
