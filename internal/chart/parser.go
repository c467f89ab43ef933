package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"chartgen/internal/llm"
)

// ParseResponse extracts the first choice's content and checks that it is a
// single, strictly valid JSON value. The returned bytes are the content as
// produced by the model.
func ParseResponse(resp *llm.CompletionResponse) (json.RawMessage, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, &GenerationError{Kind: KindEmptyResponse, Stage: StageParsing, Message: "response has no choices"}
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, &GenerationError{Kind: KindEmptyResponse, Stage: StageParsing, Message: "first choice has no content"}
	}

	var probe any
	if err := json.Unmarshal([]byte(content), &probe); err != nil {
		msg := err.Error()
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			msg = fmt.Sprintf("%s at offset %d", syntaxErr.Error(), syntaxErr.Offset)
		}
		return nil, &GenerationError{Kind: KindInvalidJSON, Stage: StageParsing, Raw: content, Message: msg, Err: err}
	}

	return json.RawMessage(content), nil
}
