package planner

import "fmt"

// rootCommands is where the top-level command list lives in an auto.
const rootCommands = "command.data.commands"

// Auto is a parsed .auto document.
type Auto struct {
	raw      []byte
	commands []interface{}
}

// PathCommand is a command of type "path" inside an auto. Renaming it
// edits the owning document in place.
type PathCommand struct {
	auto *Auto
	data map[string]interface{}
	// at is the document path of the pathName field
	at string
}

// PathName returns the referenced path, without extension.
func (c PathCommand) PathName() string {
	return getString(c.data, "pathName")
}

// SetPathName points the command at another path.
func (c PathCommand) SetPathName(name string) error {
	raw, err := setString(c.auto.raw, c.at, name)
	if err != nil {
		return err
	}
	c.auto.raw = raw
	c.data["pathName"] = name
	return nil
}

// ParseAuto parses a .auto document and checks that command.data.commands
// is present.
func ParseAuto(data []byte) (*Auto, error) {
	raw, fields, err := parse(data)
	if err != nil {
		return nil, err
	}

	root, ok := getMap(fields, "command")
	if !ok {
		return nil, fmt.Errorf("%w: auto has no root command", ErrMalformed)
	}
	rootData, ok := getMap(root, "data")
	if !ok {
		return nil, fmt.Errorf("%w: root command has no data", ErrMalformed)
	}
	commands, ok := getSlice(rootData, "commands")
	if !ok {
		return nil, fmt.Errorf("%w: root command has no commands array", ErrMalformed)
	}

	return &Auto{raw: raw, commands: commands}, nil
}

// Commands returns the top-level command list.
func (a *Auto) Commands() []interface{} {
	return a.commands
}

// PathCommands returns the path commands in document order. With
// recursive set, command groups (any command carrying data.commands) are
// descended into depth-first; otherwise only the top level is scanned.
func (a *Auto) PathCommands(recursive bool) ([]PathCommand, error) {
	var out []PathCommand
	if err := a.collect(a.commands, recursive, rootCommands, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Auto) collect(commands []interface{}, recursive bool, at string, out *[]PathCommand) error {
	for i, item := range commands {
		where := fmt.Sprintf("%s.%d", at, i)

		cmd, ok := item.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: %s is not an object", ErrMalformed, where)
		}
		data, hasData := getMap(cmd, "data")

		if getString(cmd, "type") == CommandTypePath {
			if !hasData {
				return fmt.Errorf("%w: %s has no data", ErrMalformed, where)
			}
			if _, ok := data["pathName"].(string); !ok {
				return fmt.Errorf("%w: %s has no pathName", ErrMalformed, where)
			}
			*out = append(*out, PathCommand{auto: a, data: data, at: where + ".data.pathName"})
			continue
		}

		if !recursive || !hasData {
			continue
		}
		if children, ok := getSlice(data, "commands"); ok {
			if err := a.collect(children, recursive, where+".data.commands", out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Bytes returns the document text with all edits applied.
func (a *Auto) Bytes() []byte {
	return a.raw
}
