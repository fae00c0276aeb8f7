package bf

// Run executes until the program halts. The first error stops the run and is yielded with the failing program counter.
func (v *VM) Run(yield func(int, error) bool) {
	for v.PC < len(v.Program) {
		if err := v.Step(); err != nil {
			yield(v.PC, err)
			return
		}
	}
}

// Exec compiles content and runs it to completion.
func Exec(name string, content string, options Options) (*VM, error) {
	prog, err := Compile(NewSource(name, content))
	if err != nil {
		return nil, err
	}
	vm := NewVM(prog, options)
	for _, err := range vm.Run {
		return vm, err
	}
	return vm, nil
}
