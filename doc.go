/* Package main: fmod -- a shell for editing bytes

fmod reads one command per line, from a terminal or from script files given to
its execfile subcommand. Every command operates on named variables, of which
there are four kinds: buffers, files, integers, and strings.

A buffer is a fixed size run of bytes held in memory, created zero filled by
make_buffer and never resized afterwards; writes past its end are cut short and
reported as warnings rather than failing. A file is either created new by
create_file, zero filled to its declared size and writable, or opened read only
by open_file. Bytes move between the two with from_file_to_buffer and
from_buffer_to_file, or wholesale with turn_buffer_to_file and
turn_file_to_buffer.

Integers and strings exist to parameterize other commands: any operand may be
written as $name or $(name) to substitute the value of an integer or string
variable, e.g.:

	set_variable size 0x10
	set_variable name mbr
	make_buffer $name $size
	show_buffer mbr 0 $size

Integer literals are decimal, or hexadecimal when prefixed by 0x. Names are
letters, digits, underscores, and dots, not starting with a digit. Anything
after // on a line is ignored.

Contents are shown as tables of hexadecimal (or, with --decimal, decimal)
cells, 16 (or --columns) to a row, each row labeled with the offset of its
first byte:

	  | 0  1  2  3
	0 | 00 00 ff ff
	4 | 00 00

A line that fails prints an "Error:" line and the shell carries on with the
next one. The help command lists every command with its operands; exit, or the
end of input, stops the shell.

Settings may also be given by a fmod.toml, fmod.yaml, or fmod.yml file in the
working directory, or by the --config flag; flags override the file.

*/
package main
