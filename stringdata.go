package lnk

// StringData carries the five optional, length-prefixed user-visible
// strings (MS-SHLLINK §2.4). Each slot's presence is controlled by the
// matching LinkFlags bit; an empty string and an absent slot are distinct,
// so presence is tracked by a pointer (nil means absent) rather than by
// comparing against "".
type StringData struct {
	Name         *string `json:"name,omitempty"`
	RelativePath *string `json:"relative_path,omitempty"`
	WorkingDir   *string `json:"working_dir,omitempty"`
	Arguments    *string `json:"arguments,omitempty"`
	IconLocation *string `json:"icon_location,omitempty"`
}

// stringDataSlot pairs a StringData field with the LinkFlags bit that gates
// it, letting read/write iterate the five slots through one table instead
// of repeating the same "if flag set { ... }" shape five times.
type stringDataSlot struct {
	flag LinkFlags
	get  func(*StringData) **string
}

var stringDataSlots = []stringDataSlot{
	{LinkFlagHasName, func(s *StringData) **string { return &s.Name }},
	{LinkFlagHasRelativePath, func(s *StringData) **string { return &s.RelativePath }},
	{LinkFlagHasWorkingDir, func(s *StringData) **string { return &s.WorkingDir }},
	{LinkFlagHasArguments, func(s *StringData) **string { return &s.Arguments }},
	{LinkFlagHasIconLocation, func(s *StringData) **string { return &s.IconLocation }},
}

func (rd *reader) readStringData(flags LinkFlags, codePage encodingT) (StringData, error) {
	var sd StringData
	enc := encodingFor(flags.Has(LinkFlagIsUnicode), codePage)
	for _, slot := range stringDataSlots {
		if !flags.Has(slot.flag) {
			continue
		}
		s, err := rd.readSizedString(enc)
		if err != nil {
			return StringData{}, err
		}
		*slot.get(&sd) = &s
	}
	return sd, nil
}

func (w *writer) writeStringData(sd StringData, flags LinkFlags, codePage encodingT) error {
	enc := encodingFor(flags.Has(LinkFlagIsUnicode), codePage)
	for _, slot := range stringDataSlots {
		p := *slot.get(&sd)
		if p == nil {
			continue
		}
		if err := w.writeSizedString(*p, enc); err != nil {
			return err
		}
	}
	return nil
}

// flagsForPresence returns flags with every StringData-gating bit set to
// match sd's slot presence, leaving every other bit in flags untouched.
func (sd StringData) flagsForPresence(flags LinkFlags) LinkFlags {
	for _, slot := range stringDataSlots {
		flags = flags.set(slot.flag, *slot.get(&sd) != nil)
	}
	return flags
}
