package core

// Command is one parsed, fully validated shell command.
type Command interface{ command() string }

type (
	MakeBuffer struct {
		Name string
		Size uint
	}
	FillBuffer struct {
		Name       string
		Value      byte
		Start, End uint
	}
	ShowBuffer struct {
		Name       string
		Start, End uint
	}
	BufferInfo struct {
		Name string
	}
	BufferSetByte struct {
		Name  string
		Index uint
		Value byte
	}
	CreateFile struct {
		Name string
		Size uint
	}
	FromFileToBuffer struct {
		File, Buffer string
		Count        uint
		FileStart    uint
		BufferStart  uint
	}
	FromBufferToFile struct {
		Buffer, File string
		Count        uint
		BufferStart  uint
		FileStart    uint
	}
	OpenFile struct {
		Name string
	}
	ShowFile struct {
		Name       string
		Start, End uint
	}
	BufferWriteBytes struct {
		Name  string
		Start uint
		Bytes []byte
	}
	MergeBuffers struct {
		Left, Right, New string
	}
	PullOutSlice struct {
		Name, New  string
		Start, End uint
	}
	TurnBufferToFile struct {
		Buffer, File string
	}
	TurnFileToBuffer struct {
		File, Buffer string
	}
	SetVariableInteger struct {
		Name  string
		Value uint
	}
	SetVariableString struct {
		Name  string
		Value string
	}
	GetVariable struct {
		Name string
	}
	VariablesList struct{}
	Nop           struct{}
)

func (MakeBuffer) command() string         { return "make_buffer" }
func (FillBuffer) command() string         { return "fill_buffer" }
func (ShowBuffer) command() string         { return "show_buffer" }
func (BufferInfo) command() string         { return "buffer_info" }
func (BufferSetByte) command() string      { return "buffer_set_byte" }
func (CreateFile) command() string         { return "create_file" }
func (FromFileToBuffer) command() string   { return "from_file_to_buffer" }
func (FromBufferToFile) command() string   { return "from_buffer_to_file" }
func (OpenFile) command() string           { return "open_file" }
func (ShowFile) command() string           { return "show_file" }
func (BufferWriteBytes) command() string   { return "buffer_write_bytes" }
func (MergeBuffers) command() string       { return "merge_buffers" }
func (PullOutSlice) command() string       { return "pull_out_slice" }
func (TurnBufferToFile) command() string   { return "turn_buffer_to_file" }
func (TurnFileToBuffer) command() string   { return "turn_file_to_buffer" }
func (SetVariableInteger) command() string { return "set_variable" }
func (SetVariableString) command() string  { return "set_variable" }
func (GetVariable) command() string        { return "get_variable" }
func (VariablesList) command() string      { return "variables_list" }
func (Nop) command() string                { return "" }

// CommandName returns the name a command was parsed from; Nop has none.
func CommandName(cmd Command) string { return cmd.command() }
