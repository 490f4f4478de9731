package core

const shortWriteWarning = "Not all bytes were written."

func (core *Core) makeBuffer(out *Output, cmd MakeBuffer) error {
	if err := core.checkLimit("make_buffer", cmd.Size); err != nil {
		return err
	}
	core.bind(out, core.Vars.BindBuffer(cmd.Name, NewBuffer(cmd.Size)))
	out.Infof("Buffer with name %v and size %v was created.", cmd.Name, cmd.Size)
	return nil
}

func (core *Core) fillBuffer(out *Output, cmd FillBuffer) error {
	buf, err := core.buffer(cmd.Name)
	if err != nil {
		return err
	}
	n, ok := buf.FillBytes(cmd.Value, cmd.Start, cmd.End)
	out.Infof("Bytes in the amount of %v pieces were filled by %v value in buffer '%v'.", n, cmd.Value, cmd.Name)
	if !ok {
		out.Warnf("Buffer '%v' doesn't have index %v.", cmd.Name, cmd.Start)
	}
	return nil
}

func (core *Core) showBuffer(out *Output, cmd ShowBuffer) error {
	buf, err := core.buffer(cmd.Name)
	if err != nil {
		return err
	}
	data, ok := buf.ReadBytes(cmd.Start, cmd.End)
	if !ok {
		out.Warnf("Buffer '%v' doesn't have index %v.", cmd.Name, cmd.Start)
		return nil
	}
	out.PushOther(makeTable(data, cmd.Start, core.columns, core.format))
	return nil
}

func (core *Core) bufferInfo(out *Output, cmd BufferInfo) error {
	buf, err := core.buffer(cmd.Name)
	if err != nil {
		return err
	}
	out.Infof("Name: %v.", cmd.Name)
	out.Infof("Size: %v bytes.", buf.Len())
	return nil
}

func (core *Core) bufferSetByte(out *Output, cmd BufferSetByte) error {
	buf, err := core.buffer(cmd.Name)
	if err != nil {
		return err
	}
	if cmd.Index >= buf.Len() {
		return IncorrectIndexError{cmd.Index, buf.Len()}
	}
	buf.SetByte(cmd.Value, cmd.Index)
	out.Infof("Index %v in buffer with name %v was set to %v.", cmd.Index, cmd.Name, cmd.Value)
	return nil
}

func (core *Core) bufferWriteBytes(out *Output, cmd BufferWriteBytes) error {
	buf, err := core.buffer(cmd.Name)
	if err != nil {
		return err
	}
	n := buf.WriteBytes(cmd.Bytes, cmd.Start)
	out.Infof("Bytes in buffer '%v' starting from %v were written. Count of written bytes: %v.", cmd.Name, cmd.Start, n)
	if n < uint(len(cmd.Bytes)) {
		out.Warnf(shortWriteWarning)
	}
	return nil
}

func (core *Core) mergeBuffers(out *Output, cmd MergeBuffers) error {
	left, err := core.buffer(cmd.Left)
	if err != nil {
		return err
	}
	right, err := core.buffer(cmd.Right)
	if err != nil {
		return err
	}
	size := left.Len() + right.Len()
	if err := core.checkLimit("merge_buffers", size); err != nil {
		return err
	}
	merged := NewBuffer(size)
	merged.WriteBytes(left.Bytes(), 0)
	merged.WriteBytes(right.Bytes(), left.Len())
	core.bind(out, core.Vars.BindBuffer(cmd.New, merged))
	out.Infof("Buffers %v and %v were merged into one buffer %v.", cmd.Left, cmd.Right, cmd.New)
	return nil
}

func (core *Core) pullOutSlice(out *Output, cmd PullOutSlice) error {
	buf, err := core.buffer(cmd.Name)
	if err != nil {
		return err
	}
	if cmd.End > buf.Len() {
		return IncorrectIndexError{cmd.End, buf.Len()}
	}
	if cmd.Start > cmd.End {
		return IncorrectIndexError{cmd.Start, cmd.End}
	}
	slice := bufferOf(buf.Bytes()[cmd.Start:cmd.End])
	core.bind(out, core.Vars.BindBuffer(cmd.New, slice))
	out.Infof("Slice %v[%v..%v] is pulled out and named '%v'.", cmd.Name, cmd.Start, cmd.End, cmd.New)
	return nil
}
