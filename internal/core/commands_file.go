package core

import "math"

func (core *Core) createFile(out *Output, cmd CreateFile) error {
	if err := core.checkLimit("create_file", cmd.Size); err != nil {
		return err
	}
	f, err := CreateNewFile(core.fs, cmd.Name, cmd.Size)
	if err != nil {
		return err
	}
	core.bind(out, core.Vars.BindFile(cmd.Name, f))
	out.Infof("File with name %v and size %v was created.", cmd.Name, cmd.Size)
	return nil
}

func (core *Core) openFile(out *Output, cmd OpenFile) error {
	f, err := OpenReadFile(core.fs, cmd.Name)
	if err != nil {
		return err
	}
	core.bind(out, core.Vars.BindFile(cmd.Name, f))
	out.Infof("The file %v is opened.", cmd.Name)
	return nil
}

func (core *Core) showFile(out *Output, cmd ShowFile) error {
	f, err := core.file(cmd.Name)
	if err != nil {
		return err
	}
	data, ok, err := f.ReadBytes(cmd.Start, cmd.End)
	if err != nil {
		return err
	}
	if !ok {
		out.Warnf("File '%v' doesn't have index %v.", cmd.Name, cmd.Start)
		return nil
	}
	out.PushOther(makeTable(data, cmd.Start, core.columns, core.format))
	return nil
}

func (core *Core) fromFileToBuffer(out *Output, cmd FromFileToBuffer) error {
	f, err := core.file(cmd.File)
	if err != nil {
		return err
	}
	buf, err := core.buffer(cmd.Buffer)
	if err != nil {
		return err
	}
	size, err := f.Len()
	if err != nil {
		return err
	}
	if cmd.FileStart >= size {
		return IncorrectIndexError{cmd.FileStart, size}
	}
	data, _, err := f.ReadBytes(cmd.FileStart, addClamp(cmd.FileStart, cmd.Count))
	if err != nil {
		return err
	}
	n := buf.WriteBytes(data, cmd.BufferStart)
	out.Infof("Bytes of file %v in the amount of %v pieces were written to buffer %v.", cmd.File, n, cmd.Buffer)
	if n < uint(len(data)) {
		out.Warnf(shortWriteWarning)
	}
	return nil
}

func (core *Core) fromBufferToFile(out *Output, cmd FromBufferToFile) error {
	buf, err := core.buffer(cmd.Buffer)
	if err != nil {
		return err
	}
	f, err := core.file(cmd.File)
	if err != nil {
		return err
	}
	nf, ok := f.(*NewFile)
	if !ok {
		return ReadOnlyFileError{cmd.File}
	}
	data, ok := buf.ReadBytes(cmd.BufferStart, addClamp(cmd.BufferStart, cmd.Count))
	if !ok {
		return IncorrectIndexError{cmd.BufferStart, buf.Len()}
	}
	n, err := nf.WriteBytes(data, cmd.FileStart)
	if err != nil {
		return err
	}
	out.Infof("Bytes of buffer %v in the amount of %v pieces were written to file %v.", cmd.Buffer, n, cmd.File)
	if n < uint(len(data)) {
		out.Warnf(shortWriteWarning)
	}
	return nil
}

func (core *Core) turnBufferToFile(out *Output, cmd TurnBufferToFile) error {
	buf, err := core.buffer(cmd.Buffer)
	if err != nil {
		return err
	}
	f, err := CreateNewFile(core.fs, cmd.File, buf.Len())
	if err != nil {
		return err
	}
	if _, err := f.WriteBytes(buf.Bytes(), 0); err != nil {
		f.discard(core.fs)
		return err
	}
	core.bind(out, core.Vars.BindFile(cmd.File, f))
	out.Infof("File with name %v was created from buffer %v.", cmd.File, cmd.Buffer)
	return nil
}

func (core *Core) turnFileToBuffer(out *Output, cmd TurnFileToBuffer) error {
	f, err := core.file(cmd.File)
	if err != nil {
		return err
	}
	size, err := f.Len()
	if err != nil {
		return err
	}
	if err := core.checkLimit("turn_file_to_buffer", size); err != nil {
		return err
	}
	buf := NewBuffer(size)
	if size > 0 {
		data, _, err := f.ReadBytes(0, size)
		if err != nil {
			return err
		}
		buf.WriteBytes(data, 0)
	}
	core.bind(out, core.Vars.BindBuffer(cmd.Buffer, buf))
	out.Infof("File with name %v was turned into buffer with name %v.", cmd.File, cmd.Buffer)
	return nil
}

// addClamp adds without wrapping around.
func addClamp(a, b uint) uint {
	if b > math.MaxUint-a {
		return math.MaxUint
	}
	return a + b
}
