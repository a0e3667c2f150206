package facebook

// IdentifyEvent is an identify call from the host client.
type IdentifyEvent struct {
	UserID string
	// Traits holds user traits; "address" may hold a nested map.
	Traits map[string]any
}

// TrackEvent is a track call from the host client.
type TrackEvent struct {
	Event      string
	Properties map[string]any
}

// ScreenEvent is a screen call from the host client.
type ScreenEvent struct {
	Name       string
	Properties map[string]any
}

// NewScreenEvent builds a screen event the way the host client does: the
// screen name, and the category when set, are copied into the properties,
// replacing any "name" or "category" property of the caller.
func NewScreenEvent(name, category string, properties map[string]any) ScreenEvent {
	props := make(map[string]any, len(properties)+2)
	for k, v := range properties {
		props[k] = v
	}
	if name != "" {
		props[ParamName] = name
	}
	if category != "" {
		props["category"] = category
	}
	return ScreenEvent{Name: name, Properties: props}
}
