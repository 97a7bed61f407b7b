package evaluator

import (
	"strconv"
	"strings"
)

// ValueToString implements value_to_string (spec.md §6): a
// human-readable rendering used by the REPL/CLI to print results.
// Top-level strings print unquoted; strings nested inside a list,
// record, or constructor are quoted so the structure stays
// unambiguous.
func ValueToString(v Value) (string, error) {
	forced, err := Force(v)
	if err != nil {
		return "", err
	}
	if s, ok := forced.(Str); ok {
		return string(s), nil
	}
	return render(forced)
}

func render(v Value) (string, error) {
	forced, err := Force(v)
	if err != nil {
		return "", err
	}
	switch x := forced.(type) {
	case Int:
		return strconv.FormatInt(int64(x), 10), nil
	case Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 64), nil
	case Bool:
		return strconv.FormatBool(bool(x)), nil
	case Str:
		return strconv.Quote(string(x)), nil
	case *BigInt:
		return x.V.String(), nil
	case *List:
		parts := make([]string, len(x.Elements))
		for i, el := range x.Elements {
			s, err := render(el)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case *Record:
		parts := make([]string, len(x.Fields))
		for i, f := range x.Fields {
			s, err := render(f.Value)
			if err != nil {
				return "", err
			}
			parts[i] = f.Name + " = " + s
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case *Constructor:
		if len(x.Args) == 0 {
			return x.Name, nil
		}
		parts := make([]string, len(x.Args))
		for i, a := range x.Args {
			s, err := render(a)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return x.Name + " " + strings.Join(parts, " "), nil
	case *Function:
		if x.Name != "" {
			return "<function " + x.Name + ">", nil
		}
		return "<function>", nil
	}
	return "<unknown value>", nil
}
