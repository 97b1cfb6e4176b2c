package keypad

import "fmt"

// ParseCode converts a code string such as "029A" into its Numeric-pad
// buttons. Every character must be a digit, except the final one, which
// must be the confirm marker 'A'. The empty string parses to an empty
// (degenerate) code.
//
// ParseCode is the parsing boundary: the algorithm packages assume the
// button slices they receive are well-formed.
func ParseCode(code string) ([]Button, error) {
	if code == "" {
		return nil, nil
	}

	buttons := make([]Button, 0, len(code))
	for i := 0; i < len(code); i++ {
		b := Button(code[i])
		switch {
		case b == Activate:
			if i != len(code)-1 {
				return nil, fmt.Errorf("%w: %q has a confirm marker before position %d", ErrBadCode, code, len(code))
			}
		case code[i] < '0' || code[i] > '9':
			return nil, fmt.Errorf("%w: %q contains %q", ErrBadCode, code, code[i])
		}
		buttons = append(buttons, b)
	}
	if buttons[len(buttons)-1] != Activate {
		return nil, fmt.Errorf("%w: %q lacks the trailing confirm marker", ErrBadCode, code)
	}

	return buttons, nil
}
