package lnk

// consoleDataBlockSize is the fixed total size of a ConsoleDataBlock. The
// FaceName field is 32 UTF-16LE units (64 bytes) — 64 units would overrun
// 0xCC by 64 bytes; see DESIGN.md.
const consoleDataBlockSize = 0xCC

// ConsoleDataBlock specifies console window properties: buffer and window
// geometry, colors, cursor size, font, and command history settings
// (MS-SHLLINK §2.5.1).
type ConsoleDataBlock struct {
	FillAttributes         uint16    `json:"fill_attributes"`
	PopupFillAttributes    uint16    `json:"popup_fill_attributes"`
	ScreenBufferSizeX      int16     `json:"screen_buffer_size_x"`
	ScreenBufferSizeY      int16     `json:"screen_buffer_size_y"`
	WindowSizeX            int16     `json:"window_size_x"`
	WindowSizeY            int16     `json:"window_size_y"`
	WindowOriginX          int16     `json:"window_origin_x"`
	WindowOriginY          int16     `json:"window_origin_y"`
	FontSize               uint32    `json:"font_size"`
	FontFamily             uint32    `json:"font_family"`
	FontWeight             uint32    `json:"font_weight"`
	FaceName               string    `json:"face_name"`
	CursorSize             uint32    `json:"cursor_size"`
	FullScreen             uint32    `json:"full_screen"`
	QuickEdit              uint32    `json:"quick_edit"`
	InsertMode             uint32    `json:"insert_mode"`
	AutoPosition           uint32    `json:"auto_position"`
	HistoryBufferSize      uint32    `json:"history_buffer_size"`
	NumberOfHistoryBuffers uint32    `json:"number_of_history_buffers"`
	HistoryNoDup           uint32    `json:"history_no_dup"`
	ColorTable             [16]uint32 `json:"color_table"`
}

func (ConsoleDataBlock) Signature() uint32 { return sigConsoleData }

func (rd *reader) readConsoleDataBlock(blockSize uint32) (ExtraBlock, error) {
	if blockSize != consoleDataBlockSize {
		return nil, parseErr(rd.offset(), "ConsoleDataBlock: size 0x%X, want 0x%X", blockSize, consoleDataBlockSize)
	}
	var b ConsoleDataBlock
	var err error
	if b.FillAttributes, err = rd.readUint16(); err != nil {
		return nil, err
	}
	if b.PopupFillAttributes, err = rd.readUint16(); err != nil {
		return nil, err
	}
	for _, dst := range []*int16{&b.ScreenBufferSizeX, &b.ScreenBufferSizeY, &b.WindowSizeX, &b.WindowSizeY, &b.WindowOriginX, &b.WindowOriginY} {
		v, err := rd.readUint16()
		if err != nil {
			return nil, err
		}
		*dst = int16(v)
	}
	if _, err = rd.readUint32(); err != nil { // Unused1
		return nil, err
	}
	if _, err = rd.readUint32(); err != nil { // Unused2
		return nil, err
	}
	if b.FontSize, err = rd.readUint32(); err != nil {
		return nil, err
	}
	if b.FontFamily, err = rd.readUint32(); err != nil {
		return nil, err
	}
	if b.FontWeight, err = rd.readUint32(); err != nil {
		return nil, err
	}
	faceName, err := rd.readFixedString(64, unicodeEncoding())
	if err != nil {
		return nil, err
	}
	b.FaceName = faceName
	for _, dst := range []*uint32{&b.CursorSize, &b.FullScreen, &b.QuickEdit, &b.InsertMode, &b.AutoPosition, &b.HistoryBufferSize, &b.NumberOfHistoryBuffers, &b.HistoryNoDup} {
		v, err := rd.readUint32()
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	for i := range b.ColorTable {
		v, err := rd.readUint32()
		if err != nil {
			return nil, err
		}
		b.ColorTable[i] = v
	}
	return b, nil
}

func (b ConsoleDataBlock) encode(w *writer) error {
	w.writeBlockHeader(consoleDataBlockSize, sigConsoleData)
	w.writeUint16(b.FillAttributes)
	w.writeUint16(b.PopupFillAttributes)
	for _, v := range []int16{b.ScreenBufferSizeX, b.ScreenBufferSizeY, b.WindowSizeX, b.WindowSizeY, b.WindowOriginX, b.WindowOriginY} {
		w.writeUint16(uint16(v))
	}
	w.writeUint32(0) // Unused1
	w.writeUint32(0) // Unused2
	w.writeUint32(b.FontSize)
	w.writeUint32(b.FontFamily)
	w.writeUint32(b.FontWeight)
	if err := w.writeFixedString(b.FaceName, 64, unicodeEncoding()); err != nil {
		return err
	}
	for _, v := range []uint32{b.CursorSize, b.FullScreen, b.QuickEdit, b.InsertMode, b.AutoPosition, b.HistoryBufferSize, b.NumberOfHistoryBuffers, b.HistoryNoDup} {
		w.writeUint32(v)
	}
	for _, v := range b.ColorTable {
		w.writeUint32(v)
	}
	return nil
}
