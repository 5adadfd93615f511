package lnk

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/saferwall/lnk/internal/log"
)

// DecodeOptions configures Decode. A nil *DecodeOptions is equivalent to
// DefaultDecodeOptions().
type DecodeOptions struct {
	// DefaultCodePage decodes LinkInfo's ANSI strings and, when the header's
	// IS_UNICODE bit is unset, the StringData slots. The fixed ANSI fields
	// of extension blocks do not use it; they are always decoded with the
	// package-level DefaultCodePage. Defaults to DefaultCodePage
	// (Windows-1252) when nil.
	DefaultCodePage encoding.Encoding

	// MaxIDListItems is defaulted by DefaultDecodeOptions and withDefaults
	// but is not consulted by Decode: the number of ItemIDs read is bounded
	// only by the enclosing LinkTargetIDList's byte budget.
	MaxIDListItems int

	// MaxExtraBlocks bounds how many ExtraData blocks readExtraData will
	// accumulate before giving up, guarding against a corrupt chain that
	// never reaches its terminal block. -1 means unbounded.
	MaxExtraBlocks int

	// Logger receives diagnostic messages as decoding proceeds. Defaults to
	// a discarding logger when nil.
	Logger log.Logger
}

// defaultMaxIDListItems and defaultMaxExtraBlocks are generous enough for
// any legitimate shell link while still bounding a pathological input.
const (
	defaultMaxIDListItems = 1 << 16
	defaultMaxExtraBlocks = 1 << 12
)

// DefaultDecodeOptions returns the options Decode uses when passed nil.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{
		DefaultCodePage: DefaultCodePage,
		MaxIDListItems:  defaultMaxIDListItems,
		MaxExtraBlocks:  defaultMaxExtraBlocks,
		Logger:          log.NewFilter(log.NewStdLogger(io.Discard), log.FilterLevel(log.LevelError)),
	}
}

func (o *DecodeOptions) withDefaults() *DecodeOptions {
	if o == nil {
		return DefaultDecodeOptions()
	}
	out := *o
	if out.DefaultCodePage == nil {
		out.DefaultCodePage = DefaultCodePage
	}
	if out.MaxIDListItems == 0 {
		out.MaxIDListItems = defaultMaxIDListItems
	}
	if out.MaxExtraBlocks == 0 {
		out.MaxExtraBlocks = defaultMaxExtraBlocks
	}
	if out.Logger == nil {
		out.Logger = log.NewFilter(log.NewStdLogger(io.Discard), log.FilterLevel(log.LevelError))
	}
	return &out
}

// ShellLink is the decoded form of a complete .lnk file: the fixed header,
// the two optional target-description substructures, the five optional
// display strings, and the chain of extension blocks.
type ShellLink struct {
	Header           Header            `json:"header"`
	LinkTargetIDList *LinkTargetIdList `json:"link_target_id_list,omitempty"`
	LinkInfo         *LinkInfo         `json:"link_info,omitempty"`
	StringData       StringData        `json:"string_data"`
	ExtraData        ExtraData         `json:"extra_data"`
}

// NewShellLink returns an empty shell link with a freshly defaulted header,
// suitable as a starting point for programmatic construction.
func NewShellLink() *ShellLink {
	return &ShellLink{Header: DefaultHeader()}
}

// Decode parses a complete .lnk file from r, which must support seeking
// since LinkInfo's internal layout is offset-anchored. opts may be nil to
// use DefaultDecodeOptions.
func Decode(r io.ReadSeeker, opts *DecodeOptions) (*ShellLink, error) {
	o := opts.withDefaults()
	h := log.NewHelper(o.Logger)

	rd, err := newReader(r)
	if err != nil {
		return nil, err
	}

	h.Debugf("lnk: decoding header at offset 0x%X", rd.offset())
	header, err := rd.readHeader()
	if err != nil {
		return nil, err
	}
	sl := &ShellLink{Header: header}

	if header.LinkFlags.Has(LinkFlagHasLinkTargetIDList) {
		h.Debugf("lnk: decoding LinkTargetIDList at offset 0x%X", rd.offset())
		list, err := rd.readLinkTargetIdList()
		if err != nil {
			return nil, err
		}
		sl.LinkTargetIDList = &list
	}

	if header.LinkFlags.Has(LinkFlagHasLinkInfo) {
		h.Debugf("lnk: decoding LinkInfo at offset 0x%X", rd.offset())
		li, err := rd.readLinkInfo(o.DefaultCodePage)
		if err != nil {
			return nil, err
		}
		sl.LinkInfo = &li
	}

	h.Debugf("lnk: decoding StringData at offset 0x%X", rd.offset())
	sd, err := rd.readStringData(header.LinkFlags, o.DefaultCodePage)
	if err != nil {
		return nil, err
	}
	sl.StringData = sd

	h.Debugf("lnk: decoding ExtraData at offset 0x%X", rd.offset())
	ed, err := rd.readExtraData(o.MaxExtraBlocks)
	if err != nil {
		return nil, err
	}
	sl.ExtraData = ed

	return sl, nil
}

// Encode serializes the shell link to w. LinkFlags is recomputed from the
// presence of LinkTargetIDList, LinkInfo, and each StringData slot before
// writing, so a caller can never produce a header whose flags disagree with
// its own body.
func (sl *ShellLink) Encode(w io.Writer) error {
	wr := &writer{}

	flags := sl.Header.LinkFlags
	flags = flags.set(LinkFlagHasLinkTargetIDList, sl.LinkTargetIDList != nil)
	flags = flags.set(LinkFlagHasLinkInfo, sl.LinkInfo != nil)
	flags = sl.StringData.flagsForPresence(flags)
	header := sl.Header
	header.LinkFlags = flags

	codePage := DefaultCodePage

	wr.writeHeader(header)

	if sl.LinkTargetIDList != nil {
		wr.writeLinkTargetIdList(*sl.LinkTargetIDList)
	}
	if sl.LinkInfo != nil {
		if err := wr.writeLinkInfo(*sl.LinkInfo, codePage); err != nil {
			return err
		}
	}
	if err := wr.writeStringData(sl.StringData, flags, codePage); err != nil {
		return err
	}
	if err := wr.writeExtraData(sl.ExtraData); err != nil {
		return err
	}

	_, err := w.Write(wr.bytes())
	if err != nil {
		return ioErr(err)
	}
	return nil
}

// LinkTarget returns the best available description of the link's target
// path: LinkInfo's composed path if present. IDList contents are never
// interpreted, so an IDList-only link with no LinkInfo reports an empty
// target.
func (sl *ShellLink) LinkTarget() string {
	if sl.LinkInfo != nil {
		return sl.LinkInfo.TargetPath()
	}
	return ""
}

// SetName, SetRelativePath, SetWorkingDir, SetArguments, and SetIconLocation
// set or clear the corresponding StringData slot. Passing nil clears it;
// LinkFlags is recomputed from presence at Encode time, so these setters
// never need to touch Header themselves.
func (sl *ShellLink) SetName(v *string)         { sl.StringData.Name = v }
func (sl *ShellLink) SetRelativePath(v *string) { sl.StringData.RelativePath = v }
func (sl *ShellLink) SetWorkingDir(v *string)   { sl.StringData.WorkingDir = v }
func (sl *ShellLink) SetArguments(v *string)    { sl.StringData.Arguments = v }
func (sl *ShellLink) SetIconLocation(v *string) { sl.StringData.IconLocation = v }
