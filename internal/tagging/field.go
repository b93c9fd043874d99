package tagging

// HostField is the text-bearing control whose content is the canonical
// serialized value. The engine is its only writer.
type HostField interface {
	ID() string
	Value() string
	SetValue(value string)
	// DispatchChange notifies external listeners that the value changed.
	DispatchChange()
}

// ChangeEvent is delivered to listeners after an unmuted mutation.
type ChangeEvent struct {
	FieldID string
	Value   string
}

// Tags returns the event's value split into tags.
func (e ChangeEvent) Tags() []string {
	return ParseSerialized(e.Value)
}

// ChangeListener receives change notifications from a field.
type ChangeListener func(ChangeEvent)

// MemoryField is an in-memory HostField with change subscriptions.
type MemoryField struct {
	id        string
	value     string
	listeners []ChangeListener
}

// NewMemoryField creates a field seeded with an existing serialized value.
func NewMemoryField(id, value string) *MemoryField {
	return &MemoryField{id: id, value: value}
}

func (f *MemoryField) ID() string { return f.id }

func (f *MemoryField) Value() string { return f.value }

func (f *MemoryField) SetValue(value string) { f.value = value }

// OnChange registers a listener for change notifications.
func (f *MemoryField) OnChange(l ChangeListener) {
	if l == nil {
		return
	}
	f.listeners = append(f.listeners, l)
}

func (f *MemoryField) DispatchChange() {
	ev := ChangeEvent{FieldID: f.id, Value: f.value}
	for _, l := range f.listeners {
		l(ev)
	}
}
