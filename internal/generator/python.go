// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package generator

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/qinhj5/autoapi/pkg/types"
)

// pythonTypes maps schema type names to Python annotations. Unlisted
// types fall back to the dynamic "Any".
var pythonTypes = map[string]string{
	"string":  "str",
	"integer": "int",
	"int":     "int",
	"long":    "int",
	"number":  "float",
	"float":   "float",
	"double":  "float",
	"boolean": "bool",
	"bool":    "bool",
	"array":   "list",
	"list":    "list",
	"object":  "dict",
	"dict":    "dict",
}

// pythonType returns the Python annotation for a schema type name.
func pythonType(schemaType string) string {
	if t, ok := pythonTypes[strings.ToLower(schemaType)]; ok {
		return t
	}
	return "Any"
}

// paramAnnotation returns the annotation for a parameter schema and
// whether the generated file needs typing.List. Array element types
// come from the items schema; a $ref element always annotates as dict.
func paramAnnotation(schema *types.Schema) (string, bool) {
	t := pythonType(schema.Type)
	if t != "list" {
		return t, false
	}

	inner := "Any"
	if schema.Items != nil {
		if schema.Items.Ref != "" {
			inner = "dict"
		} else {
			inner = pythonType(schema.Items.Type)
		}
	}
	return "List[" + inner + "]", true
}

// pyLiteral renders a synthesized sample value as a Python literal.
// Map keys are emitted in sorted order so output is deterministic.
func pyLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return strconv.Quote(val)
	case []interface{}:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = pyLiteral(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]interface{}:
		if len(val) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = strconv.Quote(k) + ": " + pyLiteral(val[k])
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// punctNoSpace finds a comma or semicolon glued to the next character.
var punctNoSpace = regexp.MustCompile(`([,;])(\S)`)

// lineWidth is the column budget generated Python lines are wrapped to.
const lineWidth = 110

// wrappedString wraps a long description into lines of at most
// lineWidth minus indent columns, each prefixed with the indent. With
// paramProcess set the text is treated as a "name (type): description"
// docstring entry: colons inside the description are rewritten so the
// entry keeps a single key-value separator.
func wrappedString(long string, indent int, paramProcess bool) string {
	if paramProcess {
		parts := strings.SplitN(long, ": ", 2)
		key := parts[0]
		value := parts[len(parts)-1]
		value = strings.ReplaceAll(value, ":", " - ")
		value = punctNoSpace.ReplaceAllString(value, "$1 $2")
		long = key + ": " + value
	} else {
		long = punctNoSpace.ReplaceAllString(long, "$1 $2")
	}

	length := lineWidth - indent
	var segments []string
	current := ""
	for _, word := range strings.Fields(long) {
		if len(current)+len(word) <= length {
			current += word + " "
		} else {
			segments = append(segments, strings.TrimSpace(current))
			current = word + " "
		}
	}
	if strings.TrimSpace(current) != "" {
		segments = append(segments, strings.TrimSpace(current))
	}
	if len(segments) == 0 {
		segments = []string{""}
	}

	pad := strings.Repeat(" ", indent)
	return pad + strings.Join(segments, "\n"+pad)
}
