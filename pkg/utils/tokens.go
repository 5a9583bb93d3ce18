package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens counts tokens the way GPT-4-class models do; close enough for
// sizing completion budgets across providers.
func NumTokens(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4-0613")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
