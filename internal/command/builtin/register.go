package builtin

import "github.com/fennewald/nushell/internal/command"

// RegisterAll adds all built in commands to the registry.
func RegisterAll(r *command.Registry) {
	r.Register(&Collect{})
	r.Register(&Describe{})
	r.Register(&Get{})
	r.Register(&IsEmpty{})
	r.Register(&Length{})
	r.Register(&Query{})
}
