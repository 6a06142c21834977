package cmd

import (
	"fmt"
	"strings"
)

// choiceValue is a string flag restricted to a fixed set of names
type choiceValue struct {
	value    *string
	choices  []string
	typeName string
}

func newChoiceValue(val string, p *string, typeName string, choices ...string) *choiceValue {
	*p = val
	return &choiceValue{value: p, choices: choices, typeName: typeName}
}

func (choice *choiceValue) String() string {
	return *choice.value
}

func (choice *choiceValue) Set(value string) error {
	value = strings.ToLower(value)
	for _, name := range choice.choices {
		if name == value {
			*choice.value = value
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (choose from %s)", choice.typeName, value, strings.Join(choice.choices, ", "))
}

func (choice *choiceValue) Type() string {
	return choice.typeName
}
