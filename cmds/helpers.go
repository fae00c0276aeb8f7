package cmds

// Var defines `name <value>` to set the returned variable and `name.` to reset it.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines `name` to turn the returned flag on and `!name` to turn it off.
// Set reports whether either form was given.
func Switch(name string, desc string) (value *bool, set *bool) {
	value = new(bool)
	set = new(bool)

	Define(name, Func(func() {
		*value = true
		*set = true
	}).Desc(desc))

	Define("!"+name, Func(func() {
		*value = false
		*set = true
	}))

	return
}
