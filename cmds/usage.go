package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printed := make(map[*Command]bool)
	var print func(commands map[string]*Command, indent string)
	print = func(commands map[string]*Command, indent string) {
		for _, name := range slices.Sorted(maps.Keys(commands)) {
			command := commands[name]
			if command == nil || printed[command] {
				continue
			}
			printed[command] = true
			line := indent + name
			if len(command.Aliases) > 0 {
				line += " (" + strings.Join(command.Aliases, ", ") + ")"
			}
			fmt.Println(line)
			if command.Description != "" {
				fmt.Println(indent + "    " + command.Description)
			}
			if len(command.Subs) > 0 {
				print(command.Subs, indent+"    ")
			}
		}
	}
	print(p.commands, "")
}
