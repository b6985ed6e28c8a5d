package version

import (
	"encoding/json"
	"fmt"
)

// parseArgumentElement decodes one entry of a modern arguments.jvm/game
// array: either a plain JSON string, or an object {rules, value} where
// value is a string or an array of strings.
func parseArgumentElement(raw json.RawMessage) (ArgumentElement, error) {
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return ArgumentElement{Plain: plain}, nil
	}

	var obj struct {
		Rules []rawRule       `json:"rules"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ArgumentElement{}, fmt.Errorf("parsing argument element: %w", err)
	}

	values, err := parseArgumentValue(obj.Value)
	if err != nil {
		return ArgumentElement{}, err
	}

	return ArgumentElement{
		Conditional: true,
		Rules:       convertRules(obj.Rules),
		Values:      values,
	}, nil
}

func parseArgumentValue(raw json.RawMessage) ([]string, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("parsing argument value: %w", err)
	}
	return many, nil
}

func parseArguments(raw []json.RawMessage) ([]ArgumentElement, error) {
	elements := make([]ArgumentElement, 0, len(raw))
	for _, r := range raw {
		el, err := parseArgumentElement(r)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

func plainArguments(tokens []string) []ArgumentElement {
	elements := make([]ArgumentElement, 0, len(tokens))
	for _, t := range tokens {
		elements = append(elements, ArgumentElement{Plain: t})
	}
	return elements
}
