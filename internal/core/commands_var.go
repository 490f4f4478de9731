package core

func (core *Core) setVariableInteger(out *Output, cmd SetVariableInteger) error {
	core.bind(out, core.Vars.BindInteger(cmd.Name, cmd.Value))
	out.Infof("Value in %v variable was set to '%v' value.", cmd.Name, cmd.Value)
	return nil
}

func (core *Core) setVariableString(out *Output, cmd SetVariableString) error {
	core.bind(out, core.Vars.BindString(cmd.Name, cmd.Value))
	out.Infof("Value in %v variable was set to '%v' value.", cmd.Name, cmd.Value)
	return nil
}

func (core *Core) getVariable(out *Output, cmd GetVariable) error {
	v, ok := core.Vars.Get(cmd.Name)
	if !ok {
		return UndefinedVariableError{Name: cmd.Name}
	}
	out.Infof("%v", Variable{cmd.Name, v})
	return nil
}

func (core *Core) variablesList(out *Output) {
	for _, v := range core.Vars.All() {
		out.Infof("%v", v)
	}
}
