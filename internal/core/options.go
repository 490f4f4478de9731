package core

// Option customizes a Core.
type Option interface{ apply(core *Core) }

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

var defaultOptions = Options(
	WithFS(OSFS{}),
	WithColumns(16),
	WithCellFormat(CellHex),
	WithMemLimit(DefaultMemLimit),
)

// DefaultMemLimit bounds the size of any one buffer or file; WithMemLimit(0)
// lifts the bound entirely.
const DefaultMemLimit = 1 << 30

// MaxColumns bounds table width; WithColumns clamps larger values to it.
const MaxColumns = 64

func WithFS(fsys FS) Option               { return fsOption{fsys} }
func WithColumns(n uint) Option           { return columnsOption(n) }
func WithCellFormat(cf CellFormat) Option { return cellFormatOption(cf) }
func WithMemLimit(limit uint) Option      { return memLimitOption(limit) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

type options []Option
type fsOption struct{ FS }
type columnsOption uint
type cellFormatOption CellFormat
type memLimitOption uint
type logfnOption func(mess string, args ...interface{})

func (opts options) apply(core *Core) {
	for _, opt := range opts {
		opt.apply(core)
	}
}

func (o fsOption) apply(core *Core)          { core.fs = o.FS }
func (lim memLimitOption) apply(core *Core)  { core.memLimit = uint(lim) }
func (cf cellFormatOption) apply(core *Core) { core.format = CellFormat(cf) }
func (fn logfnOption) apply(core *Core)      { core.logfn = fn }

func (n columnsOption) apply(core *Core) {
	if n > 0 {
		core.columns = min(uint(n), MaxColumns)
	}
}
