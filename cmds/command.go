package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	Args        []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Arg names the arguments in usage output.
func (c *Command) Arg(names ...string) *Command {
	c.Args = append(c.Args, names...)
	return c
}

// ArgNames returns the named arguments, falling back to parameter types.
func (c *Command) ArgNames() []string {
	if len(c.Args) > 0 || !c.Func.IsValid() {
		return c.Args
	}
	var ret []string
	for i := range c.Func.Type().NumIn() {
		ret = append(ret, c.Func.Type().In(i).String())
	}
	return ret
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
